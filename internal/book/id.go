package book

import gonanoid "github.com/matoous/go-nanoid/v2"

const idLength = 16

// newID generates a 16-character URL-safe random identifier.
// Collisions are negligible at this alphabet and length, but the store
// still re-checks on insert.
func newID() (string, error) {
	return gonanoid.New(idLength)
}

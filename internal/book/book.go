package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no book matches the given id.
var ErrNotFound = errors.New("book not found")

// Book represents a shelved book together with its reading progress.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input carries the caller-supplied fields for create and update.
// Finished is never part of the input: it is derived from the page counts
// at write time.
type Input struct {
	Name      string
	Year      int
	Author    string
	Summary   string
	Publisher string
	PageCount int
	ReadPage  int
	Reading   bool
}

// Summary is the trimmed-down projection returned by List.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Filter narrows List results. Nil pointers mean "no constraint";
// all present constraints are ANDed together.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

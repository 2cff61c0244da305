package book

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store defines the contract handlers program against.
type Store interface {
	// Create adds a new book and returns it with generated id and timestamps.
	Create(ctx context.Context, in Input) (Book, error)
	// List returns summaries of books matching the filter, in insertion order.
	List(ctx context.Context, f Filter) ([]Summary, error)
	// GetByID returns the full record, or ErrNotFound.
	GetByID(ctx context.Context, id string) (Book, error)
	// Update replaces every field except id and insertedAt, or ErrNotFound.
	Update(ctx context.Context, id string, in Input) (Book, error)
	// Delete removes the record, or ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps books in insertion order in process memory.
// net/http serves each request on its own goroutine, so all access goes
// through the RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	books []Book
	byID  map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]struct{})}
}

func (s *MemoryStore) Create(_ context.Context, in Input) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freshID()
	if err != nil {
		return Book{}, err
	}

	now := time.Now()
	b := Book{
		ID:         id,
		Name:       in.Name,
		Year:       in.Year,
		Author:     in.Author,
		Summary:    in.Summary,
		Publisher:  in.Publisher,
		PageCount:  in.PageCount,
		ReadPage:   in.ReadPage,
		Finished:   in.PageCount == in.ReadPage,
		Reading:    in.Reading,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	s.books = append(s.books, b)
	s.byID[id] = struct{}{}
	return b, nil
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.books))
	name := strings.ToLower(f.Name)
	for _, b := range s.books {
		if name != "" && !strings.Contains(strings.ToLower(b.Name), name) {
			continue
		}
		if f.Reading != nil && b.Reading != *f.Reading {
			continue
		}
		if f.Finished != nil && b.Finished != *f.Finished {
			continue
		}
		out = append(out, Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher})
	}
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.books[i], nil
	}
	return Book{}, ErrNotFound
}

func (s *MemoryStore) Update(_ context.Context, id string, in Input) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}

	b := &s.books[i]
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Finished = in.PageCount == in.ReadPage
	b.Reading = in.Reading
	b.UpdatedAt = time.Now()
	return *b, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	delete(s.byID, id)
	return nil
}

// indexOf scans linearly; the collection stays small enough that an index
// beyond the uniqueness set is not worth maintaining.
func (s *MemoryStore) indexOf(id string) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}

// freshID re-rolls on the off chance the generator collides with a live id.
func (s *MemoryStore) freshID() (string, error) {
	for {
		id, err := newID()
		if err != nil {
			return "", err
		}
		if _, taken := s.byID[id]; !taken {
			return id, nil
		}
	}
}

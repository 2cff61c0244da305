package http

import (
	"errors"
	"net/http"
	"strings"

	"bookshelf/internal/book"
)

type BookHandler struct {
	store book.Store
}

func NewBookHandler(store book.Store) *BookHandler {
	return &BookHandler{store: store}
}

func (p bookPayload) toInput() book.Input {
	return book.Input{
		Name:      p.Name,
		Year:      p.Year,
		Author:    p.Author,
		Summary:   p.Summary,
		Publisher: p.Publisher,
		PageCount: p.PageCount,
		ReadPage:  p.ReadPage,
		Reading:   p.Reading,
	}
}

// Create handles POST /books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var p bookPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		JSONFail(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}

	if msg := firstViolation(p); msg != "" {
		JSONFail(w, http.StatusBadRequest, "Gagal menambahkan buku. "+msg)
		return
	}

	created, err := h.store.Create(ctx, p.toInput())
	if err != nil {
		JSONFail(w, http.StatusInternalServerError, "Buku gagal ditambahkan")
		return
	}

	JSONSuccess(w, http.StatusCreated, "Buku berhasil ditambahkan", map[string]interface{}{
		"bookId": created.ID,
	})
}

// List handles GET /books with optional name/reading/finished filters.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter := book.Filter{Name: query.Get("name")}
	if query.Has("reading") {
		v := query.Get("reading") == "1"
		filter.Reading = &v
	}
	if query.Has("finished") {
		v := query.Get("finished") == "1"
		filter.Finished = &v
	}

	books, err := h.store.List(ctx, filter)
	if err != nil {
		JSONFail(w, http.StatusInternalServerError, "Gagal mengambil daftar buku")
		return
	}

	JSONSuccess(w, http.StatusOK, "", map[string]interface{}{
		"books": books,
	})
}

// GetByID handles GET /books/{bookId}.
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := bookIDFromPath(r.URL.Path)
	if !ok {
		JSONFail(w, http.StatusNotFound, "Buku tidak ditemukan")
		return
	}

	b, err := h.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			JSONFail(w, http.StatusNotFound, "Buku tidak ditemukan")
			return
		}
		JSONFail(w, http.StatusInternalServerError, "Gagal mengambil buku")
		return
	}

	JSONSuccess(w, http.StatusOK, "", map[string]interface{}{
		"book": b,
	})
}

// Update handles PUT /books/{bookId}. Validation is checked before
// existence: a bad payload against a missing id reports the validation
// error, not not-found.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := bookIDFromPath(r.URL.Path)
	if !ok {
		JSONFail(w, http.StatusNotFound, "Gagal memperbarui buku. Id tidak ditemukan")
		return
	}

	var p bookPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		JSONFail(w, http.StatusBadRequest, "Payload tidak valid")
		return
	}

	if msg := firstViolation(p); msg != "" {
		JSONFail(w, http.StatusBadRequest, "Gagal memperbarui buku. "+msg)
		return
	}

	if _, err := h.store.Update(ctx, id, p.toInput()); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			JSONFail(w, http.StatusNotFound, "Gagal memperbarui buku. Id tidak ditemukan")
			return
		}
		JSONFail(w, http.StatusInternalServerError, "Buku gagal diperbarui")
		return
	}

	JSONSuccess(w, http.StatusOK, "Buku berhasil diperbarui", nil)
}

// Delete handles DELETE /books/{bookId}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := bookIDFromPath(r.URL.Path)
	if !ok {
		JSONFail(w, http.StatusNotFound, "Buku gagal dihapus. Id tidak ditemukan")
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			JSONFail(w, http.StatusNotFound, "Buku gagal dihapus. Id tidak ditemukan")
			return
		}
		JSONFail(w, http.StatusInternalServerError, "Buku gagal dihapus")
		return
	}

	JSONSuccess(w, http.StatusOK, "Buku berhasil dihapus", nil)
}

// bookIDFromPath extracts the id segment from /books/{bookId} with
// net/http's ServeMux.
func bookIDFromPath(path string) (string, bool) {
	const prefix = "/books/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(path, prefix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

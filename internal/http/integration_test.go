package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/book"
	apphttp "bookshelf/internal/http"
	"bookshelf/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRouter wires the routes the same way cmd/api/main.go does.
func newRouter(store book.Store) http.Handler {
	bookHandler := apphttp.NewBookHandler(store)

	router := http.NewServeMux()
	router.Handle("/books", apphttp.MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(bookHandler.Create),
		http.MethodGet:  http.HandlerFunc(bookHandler.List),
	}))
	router.Handle("/books/", apphttp.MethodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(bookHandler.GetByID),
		http.MethodPut:    http.HandlerFunc(bookHandler.Update),
		http.MethodDelete: http.HandlerFunc(bookHandler.Delete),
	}))
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) testutil.RecordResponse {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(method, path, body))
	return testutil.RecordHTTPResponse(w)
}

func payload(name string, pageCount, readPage int, reading bool) map[string]interface{} {
	return map[string]interface{}{
		"name":      name,
		"year":      2010,
		"author":    "John Doe",
		"summary":   "Lorem ipsum dolor sit amet",
		"publisher": "Dicoding Indonesia",
		"pageCount": pageCount,
		"readPage":  readPage,
		"reading":   reading,
	}
}

func createBook(t *testing.T, router http.Handler, body map[string]interface{}) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/books", body)
	require.Equal(t, http.StatusCreated, resp.Code)
	id, ok := testutil.DataField(resp.Body, "bookId")
	require.True(t, ok)
	return id.(string)
}

func TestBooksAPI_CreateGetRoundTrip(t *testing.T) {
	router := newRouter(book.NewMemoryStore())

	// the canonical example: all pages read means finished
	id := createBook(t, router, payload("Dicoding", 100, 100, false))
	assert.Len(t, id, 16)

	resp := doJSON(t, router, http.MethodGet, "/books/"+id, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	b, ok := testutil.DataField(resp.Body, "book")
	require.True(t, ok)
	got := b.(map[string]interface{})
	assert.Equal(t, id, got["id"])
	assert.Equal(t, "Dicoding", got["name"])
	assert.Equal(t, "Dicoding Indonesia", got["publisher"])
	assert.Equal(t, true, got["finished"])
	assert.Equal(t, false, got["reading"])
	assert.Equal(t, got["insertedAt"], got["updatedAt"])
}

func TestBooksAPI_CreateValidation(t *testing.T) {
	router := newRouter(book.NewMemoryStore())

	tests := []struct {
		name            string
		body            map[string]interface{}
		expectedMessage string
	}{
		{
			name: "missing name",
			body: func() map[string]interface{} {
				p := payload("", 100, 25, false)
				delete(p, "name")
				return p
			}(),
			expectedMessage: "Gagal menambahkan buku. Mohon isi nama buku",
		},
		{
			name:            "readPage exceeds pageCount",
			body:            payload("Buku A", 100, 101, false),
			expectedMessage: "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount",
		},
		{
			name:            "pageCount below one",
			body:            payload("Buku A", 0, 0, false),
			expectedMessage: "Gagal menambahkan buku. pageCount harus bernilai minimal 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodPost, "/books", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "fail", resp.Body["status"])
			assert.Equal(t, tt.expectedMessage, resp.Body["message"])
		})
	}

	// nothing slipped into the store
	resp := doJSON(t, router, http.MethodGet, "/books", nil)
	books, ok := testutil.DataField(resp.Body, "books")
	require.True(t, ok)
	assert.Empty(t, books)
}

func TestBooksAPI_ListFilters(t *testing.T) {
	router := newRouter(book.NewMemoryStore())

	idA := createBook(t, router, payload("Belajar Go", 100, 25, true))
	idB := createBook(t, router, payload("Laskar Pelangi", 100, 100, false))
	idC := createBook(t, router, payload("belajar memasak", 50, 10, false))

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"no filters keeps insertion order", "", []string{idA, idB, idC}},
		{"case-insensitive name substring", "?name=BELAJAR", []string{idA, idC}},
		{"reading=1", "?reading=1", []string{idA}},
		{"reading=0", "?reading=0", []string{idB, idC}},
		{"finished=1", "?finished=1", []string{idB}},
		{"combined", "?name=belajar&reading=0", []string{idC}},
		{"no match", "?name=tidak+ada", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodGet, "/books"+tt.query, nil)
			require.Equal(t, http.StatusOK, resp.Code)

			raw, ok := testutil.DataField(resp.Body, "books")
			require.True(t, ok)
			list := raw.([]interface{})

			ids := make([]string, 0, len(list))
			for _, item := range list {
				entry := item.(map[string]interface{})
				// list returns the summary projection only
				assert.Len(t, entry, 3)
				ids = append(ids, entry["id"].(string))
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestBooksAPI_Update(t *testing.T) {
	router := newRouter(book.NewMemoryStore())

	id := createBook(t, router, payload("Buku A", 100, 25, false))

	getResp := doJSON(t, router, http.MethodGet, "/books/"+id, nil)
	before, _ := testutil.DataField(getResp.Body, "book")
	insertedAt := before.(map[string]interface{})["insertedAt"]

	resp := doJSON(t, router, http.MethodPut, "/books/"+id, payload("Buku A Revisi", 100, 100, true))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Buku berhasil diperbarui", resp.Body["message"])

	getResp = doJSON(t, router, http.MethodGet, "/books/"+id, nil)
	after, _ := testutil.DataField(getResp.Body, "book")
	got := after.(map[string]interface{})
	assert.Equal(t, id, got["id"])
	assert.Equal(t, "Buku A Revisi", got["name"])
	assert.Equal(t, true, got["finished"])
	assert.Equal(t, true, got["reading"])
	assert.Equal(t, insertedAt, got["insertedAt"])
	assert.NotEqual(t, insertedAt, got["updatedAt"])
}

func TestBooksAPI_UpdateMissingID(t *testing.T) {
	router := newRouter(book.NewMemoryStore())

	resp := doJSON(t, router, http.MethodPut, "/books/tidak-ada", payload("Buku A", 100, 25, false))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Gagal memperbarui buku. Id tidak ditemukan", resp.Body["message"])

	// a bad payload against a missing id reports the validation error
	bad := payload("", 100, 25, false)
	delete(bad, "name")
	resp = doJSON(t, router, http.MethodPut, "/books/tidak-ada", bad)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Gagal memperbarui buku. Mohon isi nama buku", resp.Body["message"])
}

func TestBooksAPI_Delete(t *testing.T) {
	router := newRouter(book.NewMemoryStore())

	idA := createBook(t, router, payload("Buku A", 100, 25, false))
	idB := createBook(t, router, payload("Buku B", 100, 25, false))
	idC := createBook(t, router, payload("Buku C", 100, 25, false))

	resp := doJSON(t, router, http.MethodDelete, "/books/"+idB, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Buku berhasil dihapus", resp.Body["message"])

	// the others keep their order
	listResp := doJSON(t, router, http.MethodGet, "/books", nil)
	raw, _ := testutil.DataField(listResp.Body, "books")
	list := raw.([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, idA, list[0].(map[string]interface{})["id"])
	assert.Equal(t, idC, list[1].(map[string]interface{})["id"])

	// repeated delete reports not-found
	resp = doJSON(t, router, http.MethodDelete, "/books/"+idB, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Buku gagal dihapus. Id tidak ditemukan", resp.Body["message"])
}

func TestBooksAPI_MethodNotAllowed(t *testing.T) {
	router := newRouter(book.NewMemoryStore())

	resp := doJSON(t, router, http.MethodPatch, "/books", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/books/some-id", payload("Buku A", 100, 25, false))
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

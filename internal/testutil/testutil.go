package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"

	"github.com/5w1tchy/isbn-books-api/internal/models"
	storebooks "github.com/5w1tchy/isbn-books-api/internal/store/books"
)

// FixtureBook mirrors the row the integration suite seeds before each test.
var FixtureBook = models.Book{
	ISBN:      "12341234",
	AmazonURL: "https://www.google.com",
	Author:    "test",
	Language:  "test",
	Pages:     1,
	Publisher: "test",
	Title:     "test",
	Year:      2000,
}

// MemStore is an in-memory book store returning the same sentinel errors as
// the SQL store.
type MemStore struct {
	mu    sync.Mutex
	books map[string]models.Book
	Err   error // returned by every call when set
}

func NewMemStore(seed ...models.Book) *MemStore {
	s := &MemStore{books: make(map[string]models.Book)}
	for _, b := range seed {
		s.books[b.ISBN] = b
	}
	return s
}

func (s *MemStore) List(_ context.Context) ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ISBN < out[j].ISBN
	})
	return out, nil
}

func (s *MemStore) Get(_ context.Context, isbn string) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return models.Book{}, s.Err
	}
	b, ok := s.books[isbn]
	if !ok {
		return models.Book{}, storebooks.ErrNotFound
	}
	return b, nil
}

func (s *MemStore) Create(_ context.Context, b models.Book) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return models.Book{}, s.Err
	}
	if _, ok := s.books[b.ISBN]; ok {
		return models.Book{}, storebooks.ErrConflict
	}
	s.books[b.ISBN] = b
	return b, nil
}

func (s *MemStore) Update(_ context.Context, isbn string, b models.Book) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return models.Book{}, s.Err
	}
	if _, ok := s.books[isbn]; !ok {
		return models.Book{}, storebooks.ErrNotFound
	}
	b.ISBN = isbn
	s.books[isbn] = b
	return b, nil
}

func (s *MemStore) Delete(_ context.Context, isbn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.books[isbn]; !ok {
		return storebooks.ErrNotFound
	}
	delete(s.books, isbn)
	return nil
}

// Pinger is a configurable health-check target.
type Pinger struct{ Err error }

func (p Pinger) PingContext(context.Context) error { return p.Err }

// Do sends a request with an optional JSON body through h.
func Do(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(v)
	default:
		b, _ := json.Marshal(v)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

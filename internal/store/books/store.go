package books

import (
	"errors"

	"github.com/5w1tchy/isbn-books-api/internal/store/dbx"
)

var (
	ErrNotFound = errors.New("book not found")
	ErrConflict = errors.New("book already exists")
)

// Store runs book queries against the books table. Each method is a single
// statement, so locking is left to the database.
type Store struct{ db dbx.DB }

func New(db dbx.DB) *Store { return &Store{db: db} }

const bookColumns = `isbn, amazon_url, author, language, pages, publisher, title, year`

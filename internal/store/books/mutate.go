package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/5w1tchy/isbn-books-api/internal/models"
	"github.com/5w1tchy/isbn-books-api/internal/store/dbx"
)

// Create inserts b. A duplicate isbn yields ErrConflict.
func (s *Store) Create(ctx context.Context, b models.Book) (models.Book, error) {
	row := dbx.Get(ctx, s.db, `
		INSERT INTO books (`+bookColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+bookColumns,
		b.ISBN, b.AmazonURL, b.Author, b.Language, b.Pages, b.Publisher, b.Title, b.Year,
	)
	created, err := scanBook(row)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return models.Book{}, fmt.Errorf("create book %q: %w", b.ISBN, ErrConflict)
		}
		return models.Book{}, fmt.Errorf("create book %q: %w", b.ISBN, err)
	}
	return created, nil
}

// Update overwrites every non-key column of the book with the given isbn.
// b.ISBN is ignored.
func (s *Store) Update(ctx context.Context, isbn string, b models.Book) (models.Book, error) {
	row := dbx.Get(ctx, s.db, `
		UPDATE books
		SET amazon_url = $1, author = $2, language = $3, pages = $4,
		    publisher = $5, title = $6, year = $7
		WHERE isbn = $8
		RETURNING `+bookColumns,
		b.AmazonURL, b.Author, b.Language, b.Pages, b.Publisher, b.Title, b.Year, isbn,
	)
	updated, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("update book %q: %w", isbn, err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, isbn string) error {
	res, err := dbx.Exec(ctx, s.db, `DELETE FROM books WHERE isbn = $1`, isbn)
	if err != nil {
		return fmt.Errorf("delete book %q: %w", isbn, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete book %q: %w", isbn, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

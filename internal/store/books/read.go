package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/5w1tchy/isbn-books-api/internal/models"
	"github.com/5w1tchy/isbn-books-api/internal/store/dbx"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (models.Book, error) {
	var b models.Book
	err := s.Scan(&b.ISBN, &b.AmazonURL, &b.Author, &b.Language, &b.Pages, &b.Publisher, &b.Title, &b.Year)
	return b, err
}

// List returns every book ordered by title. The result is never nil.
func (s *Store) List(ctx context.Context) ([]models.Book, error) {
	rows, err := dbx.Query(ctx, s.db, `SELECT `+bookColumns+` FROM books ORDER BY title, isbn`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	out := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, isbn string) (models.Book, error) {
	b, err := scanBook(dbx.Get(ctx, s.db, `SELECT `+bookColumns+` FROM books WHERE isbn = $1`, isbn))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("get book %q: %w", isbn, err)
	}
	return b, nil
}

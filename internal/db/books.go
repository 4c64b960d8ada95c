package db

import (
	"context"

	"github.com/pustaka-app/backend/internal/model"
)

func (db *Postgres) CreateBook(ctx context.Context, title, author string, year int, code string) (*model.Book, error) {
	query := `
		INSERT INTO books (title, author, year, code, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, title, author, year, code, created_at
	`
	var book model.Book
	err := db.Pool.QueryRow(ctx, query, title, author, year, code).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Year,
		&book.Code,
		&book.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (db *Postgres) ListBooks(ctx context.Context) ([]model.Book, error) {
	query := `
		SELECT id, title, author, year, code, created_at
		FROM books
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Year,
			&book.Code,
			&book.CreatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (db *Postgres) GetBookByID(ctx context.Context, bookID int64) (*model.Book, error) {
	query := `
		SELECT id, title, author, year, code, created_at
		FROM books
		WHERE id = $1
	`
	var book model.Book
	err := db.Pool.QueryRow(ctx, query, bookID).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Year,
		&book.Code,
		&book.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

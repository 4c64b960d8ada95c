package db

import (
	"context"
	"time"

	"github.com/pustaka-app/backend/internal/model"
)

func (db *Postgres) CreateBorrow(ctx context.Context, userID, bookID int64, dueDate time.Time) (*model.Borrow, error) {
	query := `
		INSERT INTO borrows (user_id, book_id, borrowed_at, due_date)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id, user_id, book_id, borrowed_at, due_date, returned_at, fine
	`
	var borrow model.Borrow
	err := db.Pool.QueryRow(ctx, query, userID, bookID, dueDate).Scan(
		&borrow.ID,
		&borrow.UserID,
		&borrow.BookID,
		&borrow.BorrowedAt,
		&borrow.DueDate,
		&borrow.ReturnedAt,
		&borrow.Fine,
	)
	if err != nil {
		return nil, err
	}
	return &borrow, nil
}

func (db *Postgres) GetBorrowByID(ctx context.Context, borrowID int64) (*model.Borrow, error) {
	query := `
		SELECT id, user_id, book_id, borrowed_at, due_date, returned_at, fine
		FROM borrows
		WHERE id = $1
	`
	var borrow model.Borrow
	err := db.Pool.QueryRow(ctx, query, borrowID).Scan(
		&borrow.ID,
		&borrow.UserID,
		&borrow.BookID,
		&borrow.BorrowedAt,
		&borrow.DueDate,
		&borrow.ReturnedAt,
		&borrow.Fine,
	)
	if err != nil {
		return nil, err
	}
	return &borrow, nil
}

// ListBorrowsByUser returns the user's borrow records, newest first, each
// joined with its book when the book still exists.
func (db *Postgres) ListBorrowsByUser(ctx context.Context, userID int64) ([]model.BorrowWithBook, error) {
	query := `
		SELECT b.id, b.user_id, b.book_id, b.borrowed_at, b.due_date, b.returned_at, b.fine,
		       bk.id, bk.title, bk.author, bk.year, bk.code, bk.created_at
		FROM borrows b
		LEFT JOIN books bk ON bk.id = b.book_id
		WHERE b.user_id = $1
		ORDER BY b.borrowed_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	borrows := []model.BorrowWithBook{}
	for rows.Next() {
		var item model.BorrowWithBook
		var book model.Book
		var bookID *int64
		var title, author, code *string
		var year *int
		var bookCreatedAt *time.Time

		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.BookID,
			&item.BorrowedAt,
			&item.DueDate,
			&item.ReturnedAt,
			&item.Fine,
			&bookID,
			&title,
			&author,
			&year,
			&code,
			&bookCreatedAt,
		); err != nil {
			return nil, err
		}

		if bookID != nil {
			book.ID = *bookID
			book.Title = *title
			book.Author = *author
			book.Year = *year
			book.Code = *code
			book.CreatedAt = *bookCreatedAt
			item.Book = &book
		}
		borrows = append(borrows, item)
	}
	return borrows, rows.Err()
}

func (db *Postgres) MarkBorrowReturned(ctx context.Context, borrowID int64, returnedAt time.Time) (*model.Borrow, error) {
	query := `
		UPDATE borrows
		SET returned_at = $2
		WHERE id = $1 AND returned_at IS NULL
		RETURNING id, user_id, book_id, borrowed_at, due_date, returned_at, fine
	`
	var borrow model.Borrow
	err := db.Pool.QueryRow(ctx, query, borrowID, returnedAt).Scan(
		&borrow.ID,
		&borrow.UserID,
		&borrow.BookID,
		&borrow.BorrowedAt,
		&borrow.DueDate,
		&borrow.ReturnedAt,
		&borrow.Fine,
	)
	if err != nil {
		return nil, err
	}
	return &borrow, nil
}

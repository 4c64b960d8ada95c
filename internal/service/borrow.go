package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pustaka-app/backend/internal/db"
	"github.com/pustaka-app/backend/internal/model"
)

// defaultLoanPeriod is how long a borrower has before a record counts as
// overdue when no explicit due date is given.
const defaultLoanPeriod = 7 * 24 * time.Hour

// nowFunc is swapped out in tests.
var nowFunc = time.Now

type BorrowService struct {
	repo *db.Postgres
}

func NewBorrowService(repo *db.Postgres) *BorrowService {
	return &BorrowService{repo: repo}
}

// Create records a borrow for (userId, bookId). Both rows must exist; the
// due date defaults to one loan period from now.
func (s *BorrowService) Create(ctx context.Context, req model.CreateBorrowRequest) (*model.Borrow, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId must be a positive integer", ErrInvalidInput)
	}
	if req.BookID <= 0 {
		return nil, fmt.Errorf("%w: bookId must be a positive integer", ErrInvalidInput)
	}

	if _, err := s.repo.GetUserByID(ctx, req.UserID); err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.repo.GetBookByID(ctx, req.BookID); err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: book", ErrNotFound)
		}
		return nil, err
	}

	due := nowFunc().Add(defaultLoanPeriod)
	if req.DueDate != nil {
		due = *req.DueDate
	}

	borrow, err := s.repo.CreateBorrow(ctx, req.UserID, req.BookID, due)
	if err != nil {
		return nil, err
	}
	borrow.Status = borrow.StatusAt(nowFunc())
	return borrow, nil
}

// Return marks an open borrow record as returned. Returning an already
// returned record is a conflict, not an idempotent success, so the caller
// can tell the difference.
func (s *BorrowService) Return(ctx context.Context, borrowID int64) (*model.Borrow, error) {
	if borrowID <= 0 {
		return nil, fmt.Errorf("%w: invalid borrow id", ErrInvalidInput)
	}

	borrow, err := s.repo.MarkBorrowReturned(ctx, borrowID, nowFunc())
	if err != nil {
		if db.IsNoRows(err) {
			// Either the record does not exist or it was already returned.
			existing, lookupErr := s.repo.GetBorrowByID(ctx, borrowID)
			if lookupErr == nil && existing.ReturnedAt != nil {
				return nil, fmt.Errorf("%w: already returned", ErrConflict)
			}
			return nil, fmt.Errorf("%w: borrow record", ErrNotFound)
		}
		return nil, err
	}
	borrow.Status = borrow.StatusAt(nowFunc())
	return borrow, nil
}

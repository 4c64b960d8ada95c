package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pustaka-app/backend/internal/db"
	"github.com/pustaka-app/backend/internal/model"
)

type BookService struct {
	repo *db.Postgres
}

func NewBookService(repo *db.Postgres) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) List(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *BookService) Get(ctx context.Context, bookID int64) (*model.Book, error) {
	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *BookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := validateBook(req); err != nil {
		return nil, err
	}

	book, err := s.repo.CreateBook(ctx, strings.TrimSpace(req.Title), strings.TrimSpace(req.Author), req.Year, strings.TrimSpace(req.Code))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: book code already exists", ErrConflict)
		}
		return nil, err
	}
	return book, nil
}

func validateBook(req model.CreateBookRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Author) == "" {
		return fmt.Errorf("%w: author is required", ErrInvalidInput)
	}
	if req.Year < 1000 || req.Year > nowFunc().Year() {
		return fmt.Errorf("%w: year must be a valid year", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pustaka-app/backend/internal/auth"
	"github.com/pustaka-app/backend/internal/db"
	"github.com/pustaka-app/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 128
)

type AuthService struct {
	repo  *db.Postgres
	codec *auth.Codec
}

func NewAuthService(repo *db.Postgres, codec *auth.Codec) *AuthService {
	return &AuthService{repo: repo, codec: codec}
}

// Codec exposes the token codec for the route guard, which shares the same
// process-wide secret and verification rules.
func (s *AuthService) Codec() *auth.Codec {
	return s.codec
}

// Register creates a regular user account. The password is hashed before it
// reaches the store; the plaintext is never persisted.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return s.register(ctx, name, email, password, auth.RoleUser)
}

// RegisterAdmin creates an account with the admin role. The route carrying
// it sits under an admin prefix, so only an existing admin can reach it.
func (s *AuthService) RegisterAdmin(ctx context.Context, name, email, password string) (*model.User, error) {
	return s.register(ctx, name, email, password, auth.RoleAdmin)
}

func (s *AuthService) register(ctx context.Context, name, email, password string, role auth.Role) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, name, email, string(hash), role.String())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a token carrying the user's id
// and role. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) || len(password) < minPasswordLength {
		return "", nil, ErrInvalidInput
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return "", nil, ErrUnauthorized
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrUnauthorized
	}

	token, err := s.codec.Issue(user.ID, user.Role, 0)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Profile loads the authenticated user with their borrow history, statuses
// derived from the record dates.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*model.Profile, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	borrows, err := s.repo.ListBorrowsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range borrows {
		borrows[i].Status = borrows[i].StatusAt(nowFunc())
	}

	return &model.Profile{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		CreatedAt:     user.CreatedAt,
		BorrowedBooks: borrows,
	}, nil
}

func validateRegistration(name, email, password string) error {
	if name == "" || len(name) > 128 {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validEmail(email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

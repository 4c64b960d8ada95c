package model

import (
	"time"

	"github.com/pustaka-app/backend/internal/auth"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         auth.Role `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the authenticated-user view: the user row joined with its
// borrow history. The password hash never appears in any response shape.
type Profile struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Role          auth.Role        `json:"role"`
	CreatedAt     time.Time        `json:"createdAt"`
	BorrowedBooks []BorrowWithBook `json:"borrowedBooks"`
}

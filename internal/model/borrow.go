package model

import "time"

type BorrowStatus string

const (
	BorrowStatusBorrowed BorrowStatus = "borrowed"
	BorrowStatusReturned BorrowStatus = "returned"
	BorrowStatusOverdue  BorrowStatus = "overdue"
)

type Borrow struct {
	ID         int64        `json:"id"`
	UserID     int64        `json:"userId"`
	BookID     int64        `json:"bookId"`
	BorrowedAt time.Time    `json:"borrowedAt"`
	DueDate    time.Time    `json:"dueDate"`
	ReturnedAt *time.Time   `json:"returnedAt"`
	Fine       int64        `json:"fine"`
	Status     BorrowStatus `json:"status"`
}

type BorrowWithBook struct {
	Borrow
	Book *Book `json:"book"`
}

// StatusAt derives the display status from the record's dates. Returned
// records stay returned regardless of the due date.
func (b *Borrow) StatusAt(now time.Time) BorrowStatus {
	if b.ReturnedAt != nil {
		return BorrowStatusReturned
	}
	if now.After(b.DueDate) {
		return BorrowStatusOverdue
	}
	return BorrowStatusBorrowed
}

type CreateBorrowRequest struct {
	UserID  int64      `json:"userId"`
	BookID  int64      `json:"bookId"`
	DueDate *time.Time `json:"dueDate"`
}

type BorrowResponse struct {
	Message string  `json:"message"`
	Data    *Borrow `json:"data"`
}

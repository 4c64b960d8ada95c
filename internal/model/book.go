package model

import "time"

type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Code   string `json:"code"`
}

type BookListResponse struct {
	Message string `json:"message"`
	Data    []Book `json:"data"`
}

type BookResponse struct {
	Message string `json:"message"`
	Data    *Book  `json:"data"`
}

package models

import "context"

type Id string

// Library is the set of catalog operations the transport layer calls.
type Library interface {
	ListBooks(ctx context.Context, query map[string]string) ([]Book, error)
	GetBook(ctx context.Context, id Id) (*Book, error)
	CreateBook(ctx context.Context, payload map[string]interface{}) (*Book, error)
	UpdateBook(ctx context.Context, id Id, updates map[string]interface{}) (*Book, error)
	DeleteBook(ctx context.Context, id Id) error
	Stats(ctx context.Context) (*Stats, error)
}

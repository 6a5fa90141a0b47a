package library

import (
	"context"
	"fmt"
	"sync"

	"bookshelf/db"
	"bookshelf/models"
)

// Library is the record store engine. Every operation loads the whole
// collection from Storage, works on it in memory and, if it changed
// anything, saves the whole collection back.
//
// Mutations are serialized within the process. Other processes writing the
// same storage still race on load-modify-save and the last save wins.
type Library struct {
	storage db.Storage
	mu      sync.RWMutex

	// NewId generates ids for created books.
	NewId func() (string, error)
}

var _ models.Library = (*Library)(nil)

func NewLibrary(storage db.Storage) *Library {
	return &Library{
		storage: storage,
		NewId:   newBookId,
	}
}

func (library *Library) ListBooks(ctx context.Context, query map[string]string) ([]models.Book, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}

	library.mu.RLock()
	defer library.mu.RUnlock()

	collection, err := library.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	return q.Apply(collection.Books), nil
}

func (library *Library) GetBook(ctx context.Context, id models.Id) (*models.Book, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	collection, err := library.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := collection.IndexOf(string(id))
	if i < 0 {
		return nil, fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	book := collection.Books[i]
	return &book, nil
}

// bookFromPayload validates a create payload. All editable fields must be
// present and truthy; pages and year are coerced with permissive defaults.
func bookFromPayload(payload map[string]interface{}) (*models.Book, error) {
	book := &models.Book{}
	for _, field := range models.EditableFields {
		v, ok := payload[field]
		if !ok || isFalsy(v) {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
		switch field {
		case models.FIELD_PAGES:
			book.Pages = coercePages(v)
		case models.FIELD_YEAR:
			book.Year = coerceYear(v)
		default:
			text, ok := toText(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be text", ErrMissingField, field)
			}
			book.SetText(field, text)
		}
	}
	return book, nil
}

func (library *Library) CreateBook(ctx context.Context, payload map[string]interface{}) (*models.Book, error) {
	book, err := bookFromPayload(payload)
	if err != nil {
		return nil, err
	}
	book.Id, err = library.NewId()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	collection, err := library.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	collection.Books = append(collection.Books, *book)
	if err := library.storage.Save(ctx, collection); err != nil {
		return nil, err
	}
	return book, nil
}

// checkUpdates rejects keys that aren't editable. id is tolerated and later
// ignored.
func checkUpdates(updates map[string]interface{}) error {
	for key := range updates {
		if key == models.FIELD_ID || models.IsEditableField(key) {
			continue
		}
		return fmt.Errorf("%w: %s", ErrFieldNotAllowed, key)
	}
	return nil
}

// merge overwrites the fields present in updates. The id is never touched.
func merge(book *models.Book, updates map[string]interface{}) error {
	for _, field := range models.EditableFields {
		v, ok := updates[field]
		if !ok {
			continue
		}
		switch field {
		case models.FIELD_PAGES:
			book.Pages = coercePages(v)
		case models.FIELD_YEAR:
			book.Year = coerceYear(v)
		default:
			text, ok := toText(v)
			if !ok {
				return fmt.Errorf("%w: %s must be text", ErrFieldNotAllowed, field)
			}
			book.SetText(field, text)
		}
	}
	return nil
}

func (library *Library) UpdateBook(ctx context.Context, id models.Id, updates map[string]interface{}) (*models.Book, error) {
	if err := checkUpdates(updates); err != nil {
		return nil, err
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	collection, err := library.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := collection.IndexOf(string(id))
	if i < 0 {
		return nil, fmt.Errorf("%w: id %s", ErrNotFound, id)
	}

	book := collection.Books[i]
	if err := merge(&book, updates); err != nil {
		return nil, err
	}
	collection.Books[i] = book

	if err := library.storage.Save(ctx, collection); err != nil {
		return nil, err
	}
	return &book, nil
}

func (library *Library) DeleteBook(ctx context.Context, id models.Id) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	collection, err := library.storage.Load(ctx)
	if err != nil {
		return err
	}
	i := collection.IndexOf(string(id))
	if i < 0 {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}

	collection.Books = append(collection.Books[:i], collection.Books[i+1:]...)

	return library.storage.Save(ctx, collection)
}

func (library *Library) Stats(ctx context.Context) (*models.Stats, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	collection, err := library.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	authors := map[string]struct{}{}
	for _, book := range collection.Books {
		authors[book.Author] = struct{}{}
	}
	return &models.Stats{
		NumberOfBooks:   len(collection.Books),
		NumberOfAuthors: len(authors),
	}, nil
}

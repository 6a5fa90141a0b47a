package db

import (
	"context"
	"sync"

	"bookshelf/models"
)

// MemoryStorage keeps the serialized document in memory. It goes through the
// same codec as the other backends so a round trip behaves like the real thing.
type MemoryStorage struct {
	mu    sync.Mutex
	data  []byte
	saves int

	// LoadErr and SaveErr, when set, are returned instead of doing the operation.
	LoadErr error
	SaveErr error
}

func CreateMemoryStorage(books ...models.Book) *MemoryStorage {
	storage := &MemoryStorage{}
	if books == nil {
		books = []models.Book{}
	}
	storage.data, _ = models.EncodeCollection(&models.Collection{Books: books})
	return storage
}

// CreateMemoryStorageFromBytes seeds the storage with a raw document.
func CreateMemoryStorageFromBytes(d []byte) *MemoryStorage {
	return &MemoryStorage{data: append([]byte(nil), d...)}
}

func (storage *MemoryStorage) Load(_ context.Context) (*models.Collection, error) {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	if storage.LoadErr != nil {
		return nil, unavailable("load memory", storage.LoadErr)
	}
	return decode("load memory", storage.data)
}

func (storage *MemoryStorage) Save(_ context.Context, collection *models.Collection) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	if storage.SaveErr != nil {
		return unavailable("save memory", storage.SaveErr)
	}
	d, err := encode("save memory", collection)
	if err != nil {
		return err
	}
	storage.data = d
	storage.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (storage *MemoryStorage) Saves() int {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	return storage.saves
}

// Bytes returns a copy of the stored document.
func (storage *MemoryStorage) Bytes() []byte {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	return append([]byte(nil), storage.data...)
}

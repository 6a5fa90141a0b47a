package db

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"bookshelf/models"
	"github.com/kjk/common/atomicfile"
)

// FileStorage keeps the collection in a single JSON file.
type FileStorage struct {
	Path string
}

func CreateFileStorage(path string) *FileStorage {
	return &FileStorage{path}
}

func (storage *FileStorage) Load(_ context.Context) (*models.Collection, error) {
	d, err := os.ReadFile(storage.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return &models.Collection{Books: []models.Book{}}, nil
	}
	if err != nil {
		return nil, unavailable("load "+storage.Path, err)
	}
	return decode("load "+storage.Path, d)
}

// Save replaces the file atomically: the new content is written to a
// temporary file which is then renamed over the old one.
func (storage *FileStorage) Save(_ context.Context, collection *models.Collection) error {
	op := "save " + storage.Path
	d, err := encode(op, collection)
	if err != nil {
		return err
	}
	f, err := atomicfile.New(storage.Path)
	if err != nil {
		return unavailable(op, err)
	}
	// no-op once Close succeeded, otherwise drops the temporary file
	defer f.RemoveIfNotClosed()

	if _, err = f.Write(d); err != nil {
		return unavailable(op, err)
	}
	if err = f.Close(); err != nil {
		return unavailable(op, err)
	}
	return nil
}

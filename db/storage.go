package db

import (
	"context"
	"errors"

	"bookshelf/models"
)

var (
	// ErrStorageUnavailable is returned when the medium can't be read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrCorruptData is returned when the stored document can't be parsed.
	ErrCorruptData = errors.New("corrupt data")
)

// Storage loads and saves the whole collection. There is no incremental I/O:
// every Load reads the entire document and every Save overwrites it.
type Storage interface {
	Load(ctx context.Context) (*models.Collection, error)
	Save(ctx context.Context, collection *models.Collection) error
}

type Driver string

const (
	DriverFile    Driver = "file"
	DriverMemory  Driver = "memory"
	DriverRedis   Driver = "redis"
	DriverElastic Driver = "elastic"
	DriverMinio   Driver = "minio"
)

func unavailable(op string, err error) error {
	return &storageError{op: op, kind: ErrStorageUnavailable, err: err}
}

func corrupt(op string, err error) error {
	return &storageError{op: op, kind: ErrCorruptData, err: err}
}

type storageError struct {
	op   string
	kind error
	err  error
}

func (e *storageError) Error() string {
	return e.op + ": " + e.kind.Error() + ": " + e.err.Error()
}

func (e *storageError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// decode turns the raw document into a collection, tagging parse failures
// as ErrCorruptData.
func decode(op string, d []byte) (*models.Collection, error) {
	c, err := models.DecodeCollection(d)
	if err != nil {
		return nil, corrupt(op, err)
	}
	return c, nil
}

func encode(op string, c *models.Collection) ([]byte, error) {
	d, err := models.EncodeCollection(c)
	if err != nil {
		return nil, unavailable(op, err)
	}
	return d, nil
}

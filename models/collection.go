package models

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Collection is the persisted document: every book, in insertion order.
type Collection struct {
	Books []Book `json:"books"`
}

var errNoBooks = errors.New("document has no books array")

// IndexOf returns the position of the book with the given id or -1.
func (c *Collection) IndexOf(id string) int {
	for i := range c.Books {
		if c.Books[i].Id == id {
			return i
		}
	}
	return -1
}

// EncodeCollection serializes the whole collection.
func EncodeCollection(c *Collection) ([]byte, error) {
	if c.Books == nil {
		c = &Collection{Books: []Book{}}
	}
	return json.Marshal(c)
}

// DecodeCollection parses a document produced by EncodeCollection. Empty
// input decodes to an empty collection.
func DecodeCollection(d []byte) (*Collection, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return &Collection{Books: []Book{}}, nil
	}
	var raw struct {
		Books *[]Book `json:"books"`
	}
	if err := json.Unmarshal(d, &raw); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if raw.Books == nil {
		return nil, errNoBooks
	}
	return &Collection{Books: *raw.Books}, nil
}

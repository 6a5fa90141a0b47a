package library

import (
	"fmt"
	"math"

	"bookshelf/models"
)

const (
	QUERY_PAGE    = "page"
	QUERY_LIMIT   = "limit"
	DEFAULT_PAGE  = 1
	DEFAULT_LIMIT = 10
)

// FilterFields can be matched exactly in a list query.
var FilterFields = []string{
	models.FIELD_AUTHOR,
	models.FIELD_COUNTRY,
	models.FIELD_LANGUAGE,
	models.FIELD_TITLE,
}

func isFilterField(key string) bool {
	for _, field := range FilterFields {
		if field == key {
			return true
		}
	}
	return false
}

// Query is a validated list request.
type Query struct {
	Filters map[string]string
	Page    int
	Limit   int
}

// ParseQuery validates raw query parameters. Unknown keys are rejected,
// empty filter values are dropped and bad page/limit values fall back to
// their defaults.
func ParseQuery(raw map[string]string) (*Query, error) {
	q := &Query{
		Filters: map[string]string{},
		Page:    DEFAULT_PAGE,
		Limit:   DEFAULT_LIMIT,
	}
	for key, value := range raw {
		switch {
		case key == QUERY_PAGE:
			q.Page = positiveOr(value, DEFAULT_PAGE)
		case key == QUERY_LIMIT:
			q.Limit = positiveOr(value, DEFAULT_LIMIT)
		case isFilterField(key):
			if value != "" {
				q.Filters[key] = value
			}
		default:
			return nil, fmt.Errorf("%w: key %s not allowed", ErrInvalidQuery, key)
		}
	}
	return q, nil
}

func positiveOr(s string, fallback int) int {
	n, ok := parseLeadingInt(s)
	if !ok || n < 1 {
		return fallback
	}
	return n
}

// Matches reports whether book is equal to every filter.
func (q *Query) Matches(book *models.Book) bool {
	for field, want := range q.Filters {
		got, _ := book.Text(field)
		if got != want {
			return false
		}
	}
	return true
}

// Offset is the number of matching books skipped before the page starts.
func (q *Query) Offset() int {
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return q.Limit * (q.Page - 1)
}

// Apply filters books, keeping their order, and returns the requested page.
func (q *Query) Apply(books []models.Book) []models.Book {
	offset := q.Offset()
	result := make([]models.Book, 0, min(q.Limit, len(books)))
	matched := 0
	for i := range books {
		if !q.Matches(&books[i]) {
			continue
		}
		if matched >= offset {
			result = append(result, books[i])
			if len(result) == q.Limit {
				break
			}
		}
		matched++
	}
	return result
}

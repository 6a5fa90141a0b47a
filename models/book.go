package models

// Book is a single record of the catalog.
type Book struct {
	Id        string `json:"id"`
	Author    string `json:"author"`
	Country   string `json:"country"`
	ImageLink string `json:"imageLink"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

const (
	FIELD_ID         = "id"
	FIELD_AUTHOR     = "author"
	FIELD_COUNTRY    = "country"
	FIELD_IMAGE_LINK = "imageLink"
	FIELD_LANGUAGE   = "language"
	FIELD_PAGES      = "pages"
	FIELD_TITLE      = "title"
	FIELD_YEAR       = "year"
)

// EditableFields lists the fields a client may set on create or update, in
// the order they are validated.
var EditableFields = []string{
	FIELD_AUTHOR,
	FIELD_COUNTRY,
	FIELD_IMAGE_LINK,
	FIELD_LANGUAGE,
	FIELD_PAGES,
	FIELD_TITLE,
	FIELD_YEAR,
}

// IsEditableField reports whether name is one of EditableFields.
func IsEditableField(name string) bool {
	for _, field := range EditableFields {
		if field == name {
			return true
		}
	}
	return false
}

// SetText assigns a text field by its json name. It reports false for
// unknown or numeric fields.
func (b *Book) SetText(field, value string) bool {
	switch field {
	case FIELD_AUTHOR:
		b.Author = value
	case FIELD_COUNTRY:
		b.Country = value
	case FIELD_IMAGE_LINK:
		b.ImageLink = value
	case FIELD_LANGUAGE:
		b.Language = value
	case FIELD_TITLE:
		b.Title = value
	default:
		return false
	}
	return true
}

// Text returns the value of a text field by its json name.
func (b *Book) Text(field string) (string, bool) {
	switch field {
	case FIELD_ID:
		return b.Id, true
	case FIELD_AUTHOR:
		return b.Author, true
	case FIELD_COUNTRY:
		return b.Country, true
	case FIELD_IMAGE_LINK:
		return b.ImageLink, true
	case FIELD_LANGUAGE:
		return b.Language, true
	case FIELD_TITLE:
		return b.Title, true
	}
	return "", false
}

// Stats summarizes the catalog.
type Stats struct {
	NumberOfBooks   int `json:"number_of_books"`
	NumberOfAuthors int `json:"number_of_authors"`
}

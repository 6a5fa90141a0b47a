package models

import (
	"strings"
	"testing"
)

func TestEncodeCollection(t *testing.T) {
	d, err := EncodeCollection(&Collection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(d) != `{"books":[]}` {
		t.Fatalf("unexpected document: %s", d)
	}

	d, err = EncodeCollection(&Collection{Books: []Book{{Id: "1", Title: "T", Pages: 3}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{`"id":"1"`, `"imageLink":""`, `"pages":3`, `"year":0`} {
		if !strings.Contains(string(d), key) {
			t.Fatalf("expected %s in %s", key, d)
		}
	}
}

func TestDecodeCollection(t *testing.T) {
	c, err := DecodeCollection([]byte(" \n"))
	if err != nil || c.Books == nil || len(c.Books) != 0 {
		t.Fatalf("expected empty collection, got %v, %v", c, err)
	}

	c, err = DecodeCollection([]byte(`{"books":[{"id":"x","title":"A"},{"id":"y","title":"B"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Books) != 2 || c.Books[0].Id != "x" || c.Books[1].Title != "B" {
		t.Fatalf("unexpected books: %+v", c.Books)
	}
	if c.IndexOf("y") != 1 || c.IndexOf("z") != -1 {
		t.Fatalf("unexpected IndexOf results")
	}

	for _, doc := range []string{`{`, `[]`, `{}`, `{"books":null}`, `{"books":{}}`} {
		if _, err := DecodeCollection([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", doc)
		}
	}
}

func TestBookFields(t *testing.T) {
	var b Book
	for _, field := range EditableFields {
		if !IsEditableField(field) {
			t.Fatalf("%s must be editable", field)
		}
	}
	if IsEditableField(FIELD_ID) {
		t.Fatalf("id must not be editable")
	}
	if !b.SetText(FIELD_IMAGE_LINK, "img") || b.ImageLink != "img" {
		t.Fatalf("SetText imageLink failed")
	}
	if b.SetText(FIELD_PAGES, "3") || b.SetText(FIELD_ID, "x") {
		t.Fatalf("SetText must reject non text fields")
	}
	if v, ok := b.Text(FIELD_IMAGE_LINK); !ok || v != "img" {
		t.Fatalf("Text imageLink: %q %v", v, ok)
	}
}

package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is the normalized seven-field metadata view. Field order matches the
// output contract, so JSON marshalling preserves it.
type Record struct {
	ContentType  *string `json:"meta:content-type"`
	Author       *string `json:"meta:author"`
	Pages        *int    `json:"meta:pages"`
	Lang         string  `json:"meta:lang"`
	CreationDate *string `json:"meta:date"`
	FileSize     *int64  `json:"meta:filesize"`
	OCR          *bool   `json:"meta:ocr"`
}

// Field is one key/value pair of the ordered record view.
type Field struct {
	Key   string
	Value any
}

// Fields returns the record as ordered key/value pairs. Unset pointer fields
// appear with a nil value.
func (r Record) Fields() []Field {
	return []Field{
		{"meta:content-type", deref(r.ContentType)},
		{"meta:author", deref(r.Author)},
		{"meta:pages", deref(r.Pages)},
		{"meta:lang", r.Lang},
		{"meta:date", deref(r.CreationDate)},
		{"meta:filesize", deref(r.FileSize)},
		{"meta:ocr", deref(r.OCR)},
	}
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Fallback chains: ordered key aliases tried first-match-wins. A present key
// whose value cannot be interpreted falls through to the next alias.
var (
	contentTypeKeys = []string{"Content-Type"}

	authorKeys = []string{
		"Author",
		"meta:author",
		"creator",
		"dc:creator",
		"pdf:docinfo:creator",
		"producer",
		"pdf:docinfo:producer",
	}

	pageCountKeys = []string{
		"xmpTPg:NPages",
		"Page-Count",
		"meta:page-count",
	}

	creationDateKeys = []string{
		"Creation-Date",
		"meta:creation_date",
		"created",
	}
)

func resolveRecord(meta map[string]any) Record {
	var r Record

	r.ContentType = firstString(meta, contentTypeKeys)
	r.Author = firstString(meta, authorKeys)
	r.CreationDate = firstString(meta, creationDateKeys)

	pages := resolvePages(meta)
	r.Pages = &pages

	if size, ok := intValue(meta["filesize"]); ok {
		r.FileSize = &size
	}

	ocr := boolValue(meta["ocr_parsing"])
	r.OCR = &ocr

	return r
}

// firstString returns the first alias whose value yields a string. List
// values contribute their first element.
func firstString(meta map[string]any, keys []string) *string {
	for _, key := range keys {
		v, ok := meta[key]
		if !ok {
			continue
		}
		if s, ok := stringValue(v); ok {
			return &s
		}
	}
	return nil
}

func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []string:
		if len(val) > 0 {
			return val[0], true
		}
	case []any:
		if len(val) > 0 {
			return fmt.Sprint(val[0]), true
		}
	case int, int64, float64, bool:
		return fmt.Sprint(val), true
	}
	return "", false
}

// resolvePages tries the page-count aliases in order and defaults to 1. List
// values sum their integer-parseable elements; a scalar that does not parse
// to a non-negative integer falls through to the next alias.
func resolvePages(meta map[string]any) int {
	for _, key := range pageCountKeys {
		v, ok := meta[key]
		if !ok {
			continue
		}
		if n, ok := pagesValue(v); ok {
			return n
		}
	}
	return 1
}

func pagesValue(v any) (int, bool) {
	switch val := v.(type) {
	case []any:
		return sumPages(val)
	case []string:
		elems := make([]any, len(val))
		for i, s := range val {
			elems[i] = s
		}
		return sumPages(elems)
	default:
		if n, ok := intElem(v); ok && n >= 0 {
			return n, true
		}
	}
	return 0, false
}

func sumPages(elems []any) (int, bool) {
	sum := 0
	found := false
	for _, e := range elems {
		if n, ok := intElem(e); ok && n >= 0 {
			sum += n
			found = true
		}
	}
	return sum, found
}

func intElem(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func intValue(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		return int64(val), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func boolValue(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false
		}
		return b
	}
	return false
}

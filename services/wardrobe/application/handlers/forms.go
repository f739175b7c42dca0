package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

const maxImageBytes = 10 << 20 // matches the router-level body cap

// isMultipart reports whether the request carries a multipart form
// (browser submissions with a file input) rather than a JSON body.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// itemForm is a parsed multipart submission. has reports field presence so
// PATCH can distinguish "not sent" from "sent empty".
type itemForm struct {
	values map[string][]string
	image  []byte
}

// parseItemForm parses a multipart form and reads the optional image file
// into memory. A missing or empty image part yields nil bytes.
func parseItemForm(r *http.Request) (*itemForm, error) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		return nil, err
	}
	f := &itemForm{values: r.MultipartForm.Value}

	file, header, err := r.FormFile("image")
	switch {
	case err == http.ErrMissingFile:
		return f, nil
	case err != nil:
		return nil, err
	}
	defer file.Close()

	if header.Size == 0 {
		return f, nil
	}
	data, err := readAll(file)
	if err != nil {
		return nil, err
	}
	f.image = data
	return f, nil
}

func readAll(file multipart.File) ([]byte, error) {
	return io.ReadAll(file)
}

// has reports whether the field was present in the form at all.
func (f *itemForm) has(field string) bool {
	_, ok := f.values[field]
	return ok
}

// get returns the first value for field, or "" when absent.
func (f *itemForm) get(field string) string {
	if vs := f.values[field]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// getFloat parses the field as a float, defaulting to 0 on absence or
// malformed input (matching lenient form handling: "abc" prices become 0).
func (f *itemForm) getFloat(field string) float64 {
	v, err := strconv.ParseFloat(f.get(field), 64)
	if err != nil {
		return 0
	}
	return v
}

// getInt parses the field as an int, defaulting to 0 on bad input.
func (f *itemForm) getInt(field string) int {
	v, err := strconv.Atoi(f.get(field))
	if err != nil {
		return 0
	}
	return v
}

package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/P3chys/comments-seed/internal/models"
	"github.com/go-playground/validator/v10"
)

var ErrFileNotFound = errors.New("file not found")

// Document is the top-level shape of comments.json.
type Document struct {
	Comments []Record `json:"comments" validate:"required"`
}

// Record fields are pointers so an absent key can be told apart from a zero
// value. Only presence is checked, and only when the record is converted, so
// a bad record stops a run after the records before it were written.
type Record struct {
	ID     *int64  `json:"id" validate:"required"`
	Author *string `json:"author" validate:"required"`
	Text   *string `json:"text" validate:"required"`
	Date   *string `json:"date" validate:"required"`
	Likes  *int    `json:"likes" validate:"required"`
	Image  *string `json:"image" validate:"required"`
}

// MissingKeyError lists every absent key as a JSON path, e.g. comments[2].date.
type MissingKeyError struct {
	Keys []string
}

func (e *MissingKeyError) Error() string {
	return "missing key: " + strings.Join(e.Keys, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// LoadFile reads and decodes path. A missing file yields ErrFileNotFound and
// nothing else is attempted.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes data and checks the top-level comments key. Records are
// checked one at a time by Record.Comment.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse comments file: %w", err)
	}
	if err := checkKeys(&doc, ""); err != nil {
		return nil, err
	}
	return &doc, nil
}

// checkKeys validates v and reports absent keys under prefix.
func checkKeys(v interface{}, prefix string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate comments file: %w", err)
	}
	keys := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "Record.date"; drop the type name.
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		keys = append(keys, prefix+ns)
	}
	return &MissingKeyError{Keys: keys}
}

// Comment checks that every key of the record at position index is present
// and converts it into the persisted model.
func (r Record) Comment(index int) (models.Comment, error) {
	if err := checkKeys(&r, fmt.Sprintf("comments[%d].", index)); err != nil {
		return models.Comment{}, err
	}

	date, err := ParseDate(*r.Date)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comments[%d]: %w", index, err)
	}

	return models.Comment{
		ID:     *r.ID,
		Author: *r.Author,
		Text:   *r.Text,
		Date:   date,
		Likes:  *r.Likes,
		Image:  *r.Image,
	}, nil
}

package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/5w1tchy/isbn-books-api/internal/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Mode selects which schema a payload is checked against.
type Mode int

const (
	// Create requires isbn in the body.
	Create Mode = iota
	// Update takes isbn from the path and rejects it in the body.
	Update
)

func (m Mode) String() string {
	if m == Update {
		return "update"
	}
	return "create"
}

// ValidationError carries every violated constraint of a payload.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid book: " + strings.Join(e.Violations, "; ")
}

// AsValidation unwraps err into a *ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

const isbnPattern = `^[0-9](?:[0-9-]{0,15}[0-9Xx])?$`

var isbnRe = regexp.MustCompile(isbnPattern)

type kind int

const (
	kindString kind = iota
	kindInteger
)

type fieldSpec struct {
	name string
	kind kind
}

// Order here is the order violations are reported in.
var bookFields = []fieldSpec{
	{"isbn", kindString},
	{"amazon_url", kindString},
	{"author", kindString},
	{"language", kindString},
	{"pages", kindInteger},
	{"publisher", kindString},
	{"title", kindString},
	{"year", kindInteger},
}

type bookInput struct {
	ISBN      string `json:"isbn" validate:"isbn_format"`
	AmazonURL string `json:"amazon_url" validate:"min=1,max=2048,weburl"`
	Author    string `json:"author" validate:"min=1,max=255"`
	Language  string `json:"language" validate:"min=1,max=64"`
	Pages     int    `json:"pages" validate:"gte=1,lte=2147483647"`
	Publisher string `json:"publisher" validate:"min=1,max=255"`
	Title     string `json:"title" validate:"min=1,max=500"`
	Year      int    `json:"year" validate:"gte=-2147483648,lte=2147483647"`
}

var checker *validator.Validate

func init() {
	checker = validator.New()
	checker.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = checker.RegisterValidation("isbn_format", func(fl validator.FieldLevel) bool {
		return isbnRe.MatchString(fl.Field().String())
	})
	_ = checker.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
}

// Book checks payload against the book schema for mode and returns the
// normalized book. In Update mode the returned ISBN is empty.
func Book(payload []byte, mode Mode) (models.Book, error) {
	obj, err := decodeObject(payload)
	if err != nil {
		return models.Book{}, err
	}

	var (
		in         bookInput
		violations []string
		reported   = map[string]bool{}
	)
	if mode == Update {
		reported["isbn"] = true
	}

	for _, f := range bookFields {
		if f.name == "isbn" && mode == Update {
			continue
		}
		v, ok := obj[f.name]
		if !ok {
			violations = append(violations, fmt.Sprintf("instance requires property %q", f.name))
			reported[f.name] = true
			continue
		}
		switch f.kind {
		case kindString:
			s, ok := v.(string)
			if !ok {
				violations = append(violations, typeViolation(f.name, "string"))
				reported[f.name] = true
				continue
			}
			setString(&in, f.name, normalize(s))
		case kindInteger:
			n, ok := asInteger(v)
			if !ok {
				violations = append(violations, typeViolation(f.name, "integer"))
				reported[f.name] = true
				continue
			}
			setInteger(&in, f.name, n)
		}
	}

	for _, k := range unknownKeys(obj, mode) {
		violations = append(violations, fmt.Sprintf("instance is not allowed to have the additional property %q", k))
	}

	if err := checker.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return models.Book{}, err
		}
		for _, fe := range fieldErrs {
			if reported[fe.Field()] {
				continue
			}
			reported[fe.Field()] = true
			violations = append(violations, constraintViolation(fe))
		}
	}

	if len(violations) > 0 {
		return models.Book{}, &ValidationError{Violations: violations}
	}

	b := models.Book{
		AmazonURL: in.AmazonURL,
		Author:    in.Author,
		Language:  in.Language,
		Pages:     in.Pages,
		Publisher: in.Publisher,
		Title:     in.Title,
		Year:      in.Year,
	}
	if mode == Create {
		b.ISBN = in.ISBN
	}
	return b, nil
}

func decodeObject(payload []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ValidationError{Violations: []string{"instance is not valid JSON: " + err.Error()}}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ValidationError{Violations: []string{"instance must be a single JSON value"}}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &ValidationError{Violations: []string{"instance is not of a type(s) object"}}
	}
	return obj, nil
}

// asInteger accepts JSON numbers without a fractional part. Strings never pass.
func asInteger(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return int(i), true
}

func normalize(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func unknownKeys(obj map[string]any, mode Mode) []string {
	var out []string
	for k := range obj {
		known := false
		for _, f := range bookFields {
			if f.name == k && !(k == "isbn" && mode == Update) {
				known = true
				break
			}
		}
		if !known {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func setString(in *bookInput, name, s string) {
	switch name {
	case "isbn":
		in.ISBN = s
	case "amazon_url":
		in.AmazonURL = s
	case "author":
		in.Author = s
	case "language":
		in.Language = s
	case "publisher":
		in.Publisher = s
	case "title":
		in.Title = s
	}
}

func setInteger(in *bookInput, name string, n int) {
	switch name {
	case "pages":
		in.Pages = n
	case "year":
		in.Year = n
	}
}

func typeViolation(field, typ string) string {
	return fmt.Sprintf("instance.%s is not of a type(s) %s", field, typ)
}

func constraintViolation(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("instance.%s does not meet minimum length of %s", field, param)
	case "max":
		return fmt.Sprintf("instance.%s does not meet maximum length of %s", field, param)
	case "gte":
		return fmt.Sprintf("instance.%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("instance.%s must be less than or equal to %s", field, param)
	case "weburl":
		return fmt.Sprintf("instance.%s does not conform to the %q format", field, "uri")
	case "isbn_format":
		return fmt.Sprintf("instance.%s does not match pattern %q", field, isbnPattern)
	default:
		return fmt.Sprintf("instance.%s is invalid", field)
	}
}

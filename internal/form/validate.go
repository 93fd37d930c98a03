package form

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrRequired     = errors.New("必須項目です")
	ErrInvalidEmail = errors.New("メールアドレスの形式が正しくありません")
	ErrInvalidPhone = errors.New("電話番号の形式が正しくありません")
)

var (
	// RE2's \s is ASCII-only; \v, \p{Z} and U+FEFF cover the rest of the
	// Unicode whitespace, such as the full-width space U+3000.
	emailRe = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	phoneRe = regexp.MustCompile(`^0\d{1,4}-?\d{1,4}-?\d{4}$`)
)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPhone reports whether s is a Japanese phone number such as
// 03-1234-5678 or 09012345678.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// CheckEmail is a Field.Check for email addresses.
func CheckEmail(s string) error {
	if !IsValidEmail(s) {
		return ErrInvalidEmail
	}
	return nil
}

// CheckPhone is a Field.Check for phone numbers.
func CheckPhone(s string) error {
	if !IsValidPhone(s) {
		return ErrInvalidPhone
	}
	return nil
}

// Field is a single form input.
type Field struct {
	Name     string
	Label    string
	Value    string
	Required bool
	// Check validates a non-empty value. Optional.
	Check func(string) error
}

// FieldError is a validation failure for one field.
type FieldError struct {
	Field string `json:"field"`
	Err   error  `json:"-"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error { return e.Err }

// Errors holds field errors in form order.
type Errors []FieldError

// Get returns the error for the named field, or nil.
func (es Errors) Get(name string) error {
	for _, e := range es {
		if e.Field == name {
			return e.Err
		}
	}
	return nil
}

// Map returns field name to message, suitable for JSON responses.
func (es Errors) Map() map[string]string {
	out := make(map[string]string, len(es))
	for _, e := range es {
		out[e.Field] = e.Err.Error()
	}
	return out
}

func (es Errors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Validate checks every field and returns all failures. Values are trimmed
// before checking; an empty optional field skips its Check.
func Validate(fields []Field) Errors {
	var errs Errors
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if v == "" {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Err: ErrRequired})
			}
			continue
		}
		if f.Check != nil {
			if err := f.Check(v); err != nil {
				errs = append(errs, FieldError{Field: f.Name, Err: err})
			}
		}
	}
	return errs
}

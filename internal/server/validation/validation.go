// Package validation checks registration form submissions.
//
// Every field is trimmed first. The required checks run over all fields in
// declaration order, then the format checks run in the same order; the first
// failure is returned and nothing else is evaluated.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/dmitrijs2005/userregistry/internal/common"
)

// Form holds the raw values of a registration submission. The json and form
// tags are the wire names accepted by the HTTP layer.
type Form struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Mobile    string `json:"mobile" form:"mobile"`
	Email     string `json:"email" form:"email"`
	Street    string `json:"street" form:"street"`
	City      string `json:"city" form:"city"`
	State     string `json:"state" form:"state"`
	Country   string `json:"country" form:"country"`
	LoginID   string `json:"loginId" form:"loginId"`
	Password  string `json:"password" form:"password"`
}

// FieldError reports the first field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return common.ErrorValidation
}

// whitespace is the ECMAScript white space and line terminator set, used for
// trimming and for every whitespace class in the rules below.
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	nameRegex     = regexp.MustCompile(`^[A-Za-z]+$`)
	mobileRegex   = regexp.MustCompile(`^[0-9]{10}$`)
	emailRegex    = regexp.MustCompile(`^[^` + whitespace + `]+@[^` + whitespace + `]+\.[^` + whitespace + `]+$`)
	streetRegex   = regexp.MustCompile(`^[A-Za-z0-9` + whitespace + `]+$`)
	locationRegex = regexp.MustCompile(`^[A-Za-z` + whitespace + `]+$`)
	loginIDRegex  = regexp.MustCompile(`^[A-Za-z0-9]{8}$`)
	spaceRegex    = regexp.MustCompile(`[` + whitespace + `]`)
)

func isSpace(r rune) bool {
	return spaceRegex.MatchString(string(r))
}

type field struct {
	name  string
	label string
	value func(*Form) *string
	valid func(string) bool
	msg   string
}

// fields is the single source of truth for check order and messages.
var fields = []field{
	{"firstName", "First Name", func(f *Form) *string { return &f.FirstName }, nameRegex.MatchString,
		"First Name should contain only alphabets"},
	{"lastName", "Last Name", func(f *Form) *string { return &f.LastName }, nameRegex.MatchString,
		"Last Name should contain only alphabets"},
	{"mobile", "Mobile", func(f *Form) *string { return &f.Mobile }, mobileRegex.MatchString,
		"Mobile must be exactly 10 digits"},
	{"email", "Email", func(f *Form) *string { return &f.Email }, emailRegex.MatchString,
		"Invalid Email format"},
	{"street", "Street", func(f *Form) *string { return &f.Street }, streetRegex.MatchString,
		"Street can only contain alphabets, numbers and spaces"},
	{"city", "City", func(f *Form) *string { return &f.City }, locationRegex.MatchString,
		"City should contain only alphabets"},
	{"state", "State", func(f *Form) *string { return &f.State }, locationRegex.MatchString,
		"State should contain only alphabets"},
	{"country", "Country", func(f *Form) *string { return &f.Country }, locationRegex.MatchString,
		"Country should contain only alphabets"},
	{"loginId", "Login ID", func(f *Form) *string { return &f.LoginID }, loginIDRegex.MatchString,
		"Login ID must be 8 alphanumeric characters"},
	{"password", "Password", func(f *Form) *string { return &f.Password }, validPassword,
		"Password must be 6+ chars with 1 uppercase, 1 lowercase & 1 special char"},
}

// Validate returns a trimmed copy of f, or the first *FieldError.
func Validate(f Form) (Form, error) {
	for _, fd := range fields {
		v := fd.value(&f)
		*v = strings.TrimFunc(*v, isSpace)
	}

	for _, fd := range fields {
		if *fd.value(&f) == "" {
			return Form{}, &FieldError{Field: fd.name, Message: fd.label + " is required"}
		}
	}

	for _, fd := range fields {
		if !fd.valid(*fd.value(&f)) {
			return Form{}, &FieldError{Field: fd.name, Message: fd.msg}
		}
	}

	return f, nil
}

// validPassword requires at least six UTF-16 code units on a single line,
// including a lowercase letter, an uppercase letter and a character that is
// neither an ASCII letter nor a digit.
func validPassword(s string) bool {
	var n int
	var lower, upper, symbol bool
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
		switch {
		case r == '\n', r == '\r', r == '\u2028', r == '\u2029':
			return false
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
		default:
			symbol = true
		}
	}

	return n >= 6 && lower && upper && symbol
}

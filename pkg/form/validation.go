package form

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation messages surfaced inline next to each field.
const (
	MsgFirstNameEmpty = "First Name cannot be empty"
	MsgLastNameEmpty  = "Last Name cannot be empty"
	MsgEmailEmpty     = "email cannot be empty"
	MsgEmailInvalid   = "Looks like this is not an email"
	MsgPasswordEmpty  = "password cannot be empty"
	MsgPasswordShort  = "password must be least 6 characters"
)

// MinPasswordLength is the shortest accepted password, counted in runes.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate evaluates every field and returns the complete set of violations.
// An empty result means the values can be submitted.
func Validate(values Values) ErrorSet {
	errs := make(ErrorSet)

	if isBlank(values.Get(FieldFirstName)) {
		errs[FieldFirstName] = MsgFirstNameEmpty
	}
	if isBlank(values.Get(FieldLastName)) {
		errs[FieldLastName] = MsgLastNameEmpty
	}

	email := values.Get(FieldEmail)
	switch {
	case isBlank(email):
		errs[FieldEmail] = MsgEmailEmpty
	case !ValidEmail(email):
		errs[FieldEmail] = MsgEmailInvalid
	}

	password := values.Get(FieldPassword)
	switch {
	case isBlank(password):
		errs[FieldPassword] = MsgPasswordEmpty
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs[FieldPassword] = MsgPasswordShort
	}

	return errs
}

// ValidEmail reports whether s looks like local@domain.tld. The check is made
// against the raw value, so surrounding whitespace fails it.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package contact

import (
	"regexp"

	"gitlab.com/contact-site.net/internal/domain"
	"gitlab.com/contact-site.net/internal/static/errs"
)

const (
	MinNameLength    = 2
	MinMessageLength = 10
)

// EmailPattern accepts the local@domain.tld shape only.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the raw form and returns the first failure as a validation error.
func Validate(form domain.ContactForm) error {
	if form.Name == "" || form.Email == "" || form.Message == "" {
		return errs.Invalid(errs.FieldsRequired)
	}
	if !EmailPattern.MatchString(form.Email) {
		return errs.Invalid(errs.InvalidEmail)
	}
	if domain.TextLength(form.Name) < MinNameLength {
		return errs.Invalid(errs.NameTooShort)
	}
	if domain.TextLength(form.Message) < MinMessageLength {
		return errs.Invalid(errs.MessageTooShort)
	}
	return nil
}

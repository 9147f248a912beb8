package friends

import (
	"regexp"
	"time"

	"friends-directory/internal/domain/validation"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const MinBirthYear = 1900

// Validate aplica las reglas de campos de un friend contra el instante now.
func Validate(in Input, now time.Time) validation.Errors {
	errs := validation.Errors{}

	switch {
	case validation.Blank(in.FirstName):
		errs.Set("FirstName", "First name is required.")
	case validation.TooLong(in.FirstName, 100):
		errs.Set("FirstName", "First name cannot exceed 100 characters.")
	}

	switch {
	case validation.Blank(in.LastName):
		errs.Set("LastName", "Last name is required.")
	case validation.TooLong(in.LastName, 100):
		errs.Set("LastName", "Last name cannot exceed 100 characters.")
	}

	switch {
	case validation.Blank(in.Email):
		errs.Set("Email", "Email is required.")
	case !emailPattern.MatchString(in.Email):
		errs.Set("Email", "Email must be a valid email address.")
	case validation.TooLong(in.Email, 255):
		errs.Set("Email", "Email cannot exceed 255 characters.")
	}

	if in.Birthday != nil {
		switch {
		case in.Birthday.After(now):
			errs.Set("Birthday", "Birthday must be in the past.")
		case in.Birthday.Year() < MinBirthYear:
			errs.Set("Birthday", "Birthday must be after 1900.")
		}
	}

	return errs
}

package addresses

import (
	"regexp"
	"strconv"

	"friends-directory/internal/domain/validation"
)

var disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// Validate aplica las reglas de campos de una dirección.
// Orden por campo: requerido, charset, largo.
func Validate(in Input) validation.Errors {
	errs := validation.Errors{}

	textField(errs, "StreetAddress", "Street address", in.StreetAddress, 255)
	textField(errs, "City", "City", in.City, 100)

	if in.ZipCode < MinZipCode || in.ZipCode > MaxZipCode {
		errs.Set("ZipCode", "Zip code must be between 0 and 999999.")
	}

	textField(errs, "Country", "Country", in.Country, 100)

	return errs
}

func textField(errs validation.Errors, field, label, value string, max int) {
	switch {
	case validation.Blank(value):
		errs.Set(field, label+" is required.")
	case disallowedChars.MatchString(value):
		errs.Set(field, label+" can only contain letters, numbers, and spaces.")
	case validation.TooLong(value, max):
		errs.Set(field, label+" cannot exceed "+strconv.Itoa(max)+" characters.")
	}
}

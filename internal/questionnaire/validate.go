package questionnaire

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	minAge = 16
	maxAge = 100
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	custom := map[string]validator.Func{
		"age":           validateAge,
		"email_address": validateEmail,
		"phone":         validatePhone,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registering %s validation: %v", tag, err))
		}
	}

	return v
}

func validateAge(fl validator.FieldLevel) bool {
	age, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return age >= minAge && age <= maxAge
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	digits := PhoneDigits(fl.Field().String())
	return len(digits) == 10 || len(digits) == 11
}

// ValidateStep checks every rule of the step against the submitted fields.
// All fields are checked; the returned *ValidationError lists every failure.
func ValidateStep(step int, fields Fields) error {
	def, err := Step(step)
	if err != nil {
		return err
	}

	var failed []FieldError
	for _, field := range def.Fields {
		if ferr := checkField(field, fields); ferr != nil {
			failed = append(failed, *ferr)
		}
	}

	if len(failed) == 0 {
		return nil
	}

	return &ValidationError{Step: step, Errors: failed}
}

// ValidateField checks a single field in isolation, e.g. when the user leaves
// an input. It returns nil for valid values and for unknown field names.
func ValidateField(name string, values ...string) *FieldError {
	field, _, ok := LookupField(name)
	if !ok {
		return nil
	}
	return checkField(field, Fields{name: values})
}

func checkField(field Field, fields Fields) *FieldError {
	if field.Rule == "" {
		return nil
	}
	if err := validate.Var(field.value(fields), field.Rule); err != nil {
		return &FieldError{Field: field.Name, Message: field.Message}
	}
	return nil
}

// PhoneDigits strips everything but digits from a phone number.
func PhoneDigits(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// FormatPhone applies the display mask (DD) DDDD-DDDD or (DD) DDDDD-DDDD,
// progressively for partial input. Inputs longer than 11 digits are returned
// as typed.
func FormatPhone(phone string) string {
	digits := PhoneDigits(phone)
	switch n := len(digits); {
	case n > 11:
		return phone
	case n <= 2:
		return digits
	case n <= 6:
		return fmt.Sprintf("(%s) %s", digits[:2], digits[2:])
	case n <= 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	}
}

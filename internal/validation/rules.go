package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// StructRules evaluates go-playground/validator struct tags and phrases each
// failure as a Violation keyed by the payload's JSON field name.
type StructRules struct {
	validate *validator.Validate
}

// NewStructRules prepares v for violation reporting. A nil v gets a fresh instance.
func NewStructRules(v *validator.Validate) *StructRules {
	if v == nil {
		v = validator.New()
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.String {
			return strings.TrimSpace(field.String()) != ""
		}
		return !field.IsZero()
	})
	return &StructRules{validate: v}
}

// Check validates payload's tags. Only a malformed payload (not a struct) is an error.
func (r *StructRules) Check(payload any) ([]Violation, error) {
	err := r.validate.Struct(payload)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}
	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Message: describe(fe, DisplayName(fe.Field())),
		})
	}
	return violations, nil
}

func describe(fe validator.FieldError, label string) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("'%s' must not be empty.", label)
	case "email":
		return fmt.Sprintf("'%s' is not a valid email address.", label)
	case "uuid", "uuid4":
		return fmt.Sprintf("'%s' is not in the correct format.", label)
	case "max":
		if isString {
			return fmt.Sprintf("The length of '%s' must be %s characters or fewer. You entered %d characters.", label, fe.Param(), length(fe))
		}
		return fmt.Sprintf("'%s' must be less than or equal to '%s'.", label, fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("The length of '%s' must be at least %s characters. You entered %d characters.", label, fe.Param(), length(fe))
		}
		return fmt.Sprintf("'%s' must be greater than or equal to '%s'.", label, fe.Param())
	case "len":
		return fmt.Sprintf("'%s' must be %s characters in length. You entered %d characters.", label, fe.Param(), length(fe))
	case "gte":
		return fmt.Sprintf("'%s' must be greater than or equal to '%s'.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("'%s' must be less than or equal to '%s'.", label, fe.Param())
	default:
		return fmt.Sprintf("'%s' is not valid.", label)
	}
}

func length(fe validator.FieldError) int {
	return utf8.RuneCountInString(fmt.Sprint(fe.Value()))
}

// DisplayName turns a PascalCase field name into words: "FirstName" becomes "First Name".
func DisplayName(field string) string {
	runes := []rune(field)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

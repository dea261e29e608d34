package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var projectNameValidRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9 +\-_.]*[a-zA-Z0-9.])?$`)

func projectNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return projectNameValidRegex.MatchString(val)
}

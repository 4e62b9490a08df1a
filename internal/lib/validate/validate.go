package validate

import (
	"github.com/go-playground/validator/v10"
)

var instance = validator.New(validator.WithRequiredStructEnabled())

// Struct runs tag-based validation on s.
func Struct(s interface{}) error {
	return instance.Struct(s)
}

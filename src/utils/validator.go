package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags against it.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation. The error handler turns the
// resulting validator.ValidationErrors into a 400 response.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

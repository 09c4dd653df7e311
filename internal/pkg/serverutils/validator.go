package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds failures into a single
// 400 AppError listing the offending fields.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return NewValidationError("Invalid request data")
		}
		fields := make([]string, len(errs))
		for i, fe := range errs {
			fields[i] = fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
		}
		return NewValidationError("Invalid request data: " + strings.Join(fields, ", "))
	}
	return nil
}

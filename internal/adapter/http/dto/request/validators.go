package request

import (
	"sync"

	"academy_payments/internal/domain/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("phone12", validatePhone12)
	})
}

// validatePhone12 accepts 12 digit international numbers without '+'.
func validatePhone12(fl validator.FieldLevel) bool {
	return validation.ValidateMpesaPhone(fl.Field().String()).IsValid
}

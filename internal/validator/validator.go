package validator

import (
	"fmt"
	"regexp"

	"github.com/eventura/booking-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	mobileRgx = regexp.MustCompile(`^\d{10}$`)
	otpRgx    = regexp.MustCompile(`^\d{6}$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("mobile", validateMobile)
	validator.RegisterValidation("otp", validateOTP)
	validator.RegisterValidation("payment_method", validatePaymentMethod)

	return validator
}

func validateMobile(fl validator.FieldLevel) bool {
	return mobileRgx.MatchString(fl.Field().String())
}

func validateOTP(fl validator.FieldLevel) bool {
	return otpRgx.MatchString(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return domain.PaymentMethod(fl.Field().String()).Valid()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "mobile":
		return "must be a valid 10-digit mobile number"
	case "otp":
		return "must be a 6-digit code"
	case "payment_method":
		return "must be one of: card, upi, netbanking, wallet"
	default:
		return "is invalid"
	}
}

package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// spot_type validates the SpotType enumeration on request DTOs.
	_ = validate.RegisterValidation("spot_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "stairs", "rail", "ledge", "gap", "manual_pad",
			"bowl", "ramp", "halfpipe", "plaza", "other", "unknown":
			return true
		}
		return false
	})

	// difficulty validates the DifficultyRating enumeration.
	_ = validate.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "easy", "medium", "hard", "pro", "unknown":
			return true
		}
		return false
	})
}

// Validate - struct validation per `validate` tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - access to the validator for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}

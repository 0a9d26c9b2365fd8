package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskmaster/schedule"
)

var Validate *validator.Validate

// InitValidator registers the custom binding validators used by the request
// DTOs: "clocktime" for HH:mm fields and "dateonly" for YYYY-MM-DD fields.
func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("clocktime", ValidateClockTimeRule)
	v.RegisterValidation("dateonly", ValidateDateOnlyRule)
}

func ValidateClockTimeRule(fl validator.FieldLevel) bool {
	_, err := schedule.ParseClock(fl.Field().String())
	return err == nil
}

func ValidateDateOnlyRule(fl validator.FieldLevel) bool {
	_, err := time.Parse(schedule.DateLayout, fl.Field().String())
	return err == nil
}

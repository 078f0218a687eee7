package utils

import (
	"meetcure/calendar"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom binding validations on gin's
// validator engine. Must run before the first request is bound.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// "clocktime" accepts 12-hour clock strings such as "9:30 AM".
	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		_, _, err := calendar.ParseClock(fl.Field().String())
		return err == nil
	})
}

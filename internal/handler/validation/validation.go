package validation

import (
	"sync"

	"temple-booking/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var (
	once        sync.Once
	registerErr error
)

// Register adds the custom binding rules to gin's validator engine.
// Safe to call more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("hhmm", validateTimeOfDay)
	})
	return registerErr
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := reservation.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

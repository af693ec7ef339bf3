package validation

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-availability/internal/domain/calendar"
)

const CalendarDateTag = "calendar_date"

var once sync.Once

// Register adds the custom binding tags to gin's validator. Safe to call repeatedly.
func Register() {
	once.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation(CalendarDateTag, calendarDate)
		}
	})
}

func calendarDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := calendar.Parse(s)
	return err == nil
}

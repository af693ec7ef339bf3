//go:build unit

package validation_test

import (
	"testing"

	"hotel-availability/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type dateHolder struct {
	Date string `binding:"required,calendar_date"`
}

func TestCalendarDate(t *testing.T) {
	validation.Register()
	validation.Register()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "正しい日付", input: "2024-03-15", valid: true},
		{name: "うるう日", input: "2024-02-29", valid: true},
		{name: "存在しない日付", input: "2023-02-29", valid: false},
		{name: "時刻付きNG", input: "2024-03-15T00:00:00Z", valid: false},
		{name: "空文字はrequiredで弾く", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&dateHolder{Date: tt.input})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

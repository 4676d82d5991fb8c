package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/escolabase/carometro/core"
)

var (
	shiftTag  = "shift"
	shiftText = "invalid shift"

	statusTag  = "studentstatus"
	statusText = "invalid student status"
)

func init() {
	_ = core.Validate.RegisterValidation(shiftTag, shiftValidation)
	core.RegisterCustomTranslation(shiftTag, shiftText)

	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(statusTag, statusText)
}

// shiftValidation only allows real shifts; the ShiftAll filter value is not
// a valid shift for a student record.
func shiftValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, shift := range Shifts {
		if val == shift {
			return true
		}
	}
	return false
}

func statusValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, status := range Statuses {
		if val == status {
			return true
		}
	}
	return false
}

package student

import (
	"github.com/escolabase/carometro/core"
)

// Shifts
const (
	ShiftMorning   = "Manhã"
	ShiftAfternoon = "Tarde"
	ShiftIntegral  = "Integral"

	// ShiftAll is a query-time filter value; no student is ever enrolled in it.
	ShiftAll = "Todos"
)

// GradeAll matches every grade when filtering.
const GradeAll = "Todos"

// Statuses
const (
	StatusActive      = "Ativo"
	StatusInactive    = "Inativo"
	StatusTransferred = "Transferido"
)

var (
	Shifts   = []string{ShiftMorning, ShiftAfternoon, ShiftIntegral}
	Statuses = []string{StatusActive, StatusInactive, StatusTransferred}

	// GradesByShift lists the class labels offered per shift.
	GradesByShift = map[string][]string{
		ShiftMorning:   {"5º A", "6º A", "6º B", "7º A", "7º B", "7º C", "8º A", "8º B", "8º C", "9º A", "9º B", "9º C"},
		ShiftIntegral:  {"1º A", "1º B", "1º C", "2º A", "2º B", "2º C", "3º A", "3º B"},
		ShiftAfternoon: {"4º A", "4º B", "5º B", "5º C"},
	}
)

// Student is a directory record. ID is unique and immutable once created;
// every other field is mutable through full-record replace only.
type Student struct {
	ID                 string `json:"id" validate:"required"`
	Name               string `json:"name" validate:"required"`
	RegistrationNumber string `json:"registrationNumber" validate:"omitempty,alphanum_"` // RA
	RGA                string `json:"rga" validate:"omitempty,alphanum_"`
	Shift              string `json:"shift" validate:"required,shift"`
	Grade              string `json:"grade" validate:"required"`
	PhotoURL           string `json:"photoUrl"`  // remote URL or embedded data blob
	Filiacao1          string `json:"filiacao1"` // primary guardian
	Filiacao2          string `json:"filiacao2"`
	Telefone1          string `json:"telefone1"` // primary contact
	Telefone2          string `json:"telefone2"`
	Telefone3          string `json:"telefone3"`
	BirthDate          string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Status             string `json:"studentStatus" validate:"required,studentstatus"`
}

func (s *Student) Validate() error {
	s.Name = core.CleanString(s.Name)
	s.Grade = core.CleanString(s.Grade)
	s.RegistrationNumber = core.CleanString(s.RegistrationNumber)
	s.RGA = core.CleanString(s.RGA)
	return core.TranslateError(core.Validate.Struct(s))
}

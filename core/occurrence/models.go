package occurrence

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/escolabase/carometro/core"
)

// Categories
const (
	CategoryBehavioral = "Comportamental"
	CategoryAcademic   = "Acadêmica"
	CategoryMedical    = "Médica"
	CategoryOther      = "Outros"
)

var Categories = []string{CategoryBehavioral, CategoryAcademic, CategoryMedical, CategoryOther}

// Occurrence is a single incident record tied to one student. Records are
// immutable once created; they are only ever deleted, individually by ID.
type Occurrence struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	// GroupID is shared by the records created in one group add and empty
	// otherwise. Group membership is a query-time correlation, not an
	// ownership relation: deleting one member never touches its siblings.
	GroupID      string    `json:"groupId,omitempty"`
	Date         time.Time `json:"date"` // UTC
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	RegisteredBy string    `json:"registeredBy"` // display name snapshot of the authoring staff member
}

// RegisteredByName satisfies auth.Authored.
func (o Occurrence) RegisteredByName() string {
	return o.RegisteredBy
}

// NewOccurrence contains information needed to register one occurrence.
type NewOccurrence struct {
	StudentID   string    `json:"studentId" validate:"required"`
	Date        time.Time `json:"date"` // defaults to now (UTC) when zero
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required,occcategory"`
}

func (no *NewOccurrence) Validate() error {
	no.Title = core.CleanString(no.Title)
	no.Description = core.CleanString(no.Description)
	return core.TranslateError(core.Validate.Struct(no))
}

// NewGroupOccurrence registers the same occurrence against several students
// in one action.
type NewGroupOccurrence struct {
	StudentIDs  []string  `json:"studentIds" validate:"required,min=1,unique"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required,occcategory"`
}

func (ng *NewGroupOccurrence) Validate() error {
	ng.Title = core.CleanString(ng.Title)
	ng.Description = core.CleanString(ng.Description)
	return core.TranslateError(core.Validate.Struct(ng))
}

var (
	categoryTag  = "occcategory"
	categoryText = "invalid occurrence category"
)

func init() {
	_ = core.Validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(categoryTag, categoryText)
}

func categoryValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, cat := range Categories {
		if val == cat {
			return true
		}
	}
	return false
}

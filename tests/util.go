package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/escolabase/carometro/core/occurrence"
	"github.com/escolabase/carometro/core/student"
)

// Logger is a no-op core.Logger for tests.
type Logger struct{}

func (Logger) Enable(bool)                  {}
func (Logger) Debug(string, ...interface{}) {}
func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
func (Logger) Fatal(string, ...interface{}) {}

// NewStudent returns a valid student record with the given identity.
func NewStudent(id, name, shift, grade string) student.Student {
	return student.Student{
		ID:                 id,
		Name:               name,
		RegistrationNumber: "RA" + id,
		RGA:                "RGA" + id,
		Shift:              shift,
		Grade:              grade,
		BirthDate:          "2012-01-15",
		Status:             student.StatusActive,
	}
}

// CreateOccurrence persists a behavioral occurrence fixture and returns it.
func CreateOccurrence(
	t *testing.T,
	repo occurrence.Repository,
	studentID, title, registeredBy string,
	date time.Time,
) occurrence.Occurrence {
	occ := occurrence.Occurrence{
		ID:           uuid.New().String(),
		StudentID:    studentID,
		Date:         date.UTC(),
		Title:        title,
		Description:  title + " - detalhes",
		Category:     occurrence.CategoryBehavioral,
		RegisteredBy: registeredBy,
	}
	created, err := repo.CreateOccurrences(occ)
	if err != nil {
		t.Fatalf("CreateOccurrence() failed: %v", err)
	}
	return created[0]
}

package student

import (
	"errors"

	"github.com/escolabase/carometro/core"
	"github.com/escolabase/carometro/core/auth"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// FilterStudents matches on shift and grade in stable insertion order.
		// ShiftAll / GradeAll match everything for their field.
		FilterStudents(shift, grade string) ([]Student, error)
		// ReplaceStudent substitutes the stored record sharing s.ID wholesale.
		// It never inserts; an unknown ID leaves the collection unchanged and
		// returns ErrNotFound.
		ReplaceStudent(s Student) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) Filter(shift, grade string) ([]Student, error) {
	return svc.repo.FilterStudents(shift, grade)
}

// Replace performs a full-record substitution keyed on s.ID. Only admins may
// edit student records; the policy is enforced here in addition to being
// available to boundary collaborators via auth.CanEditStudent.
func (svc *Service) Replace(actor auth.User, s Student) (Student, error) {
	if !auth.CanEditStudent(actor) {
		return Student{}, core.ErrPermissionDenied
	}
	if err := s.Validate(); err != nil {
		return Student{}, err
	}
	return svc.repo.ReplaceStudent(s)
}

package occurrence

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/escolabase/carometro/core"
	"github.com/escolabase/carometro/core/auth"
	"github.com/escolabase/carometro/core/student"
)

var ErrNotFound = errors.New("occurrence not found")

type (
	Repository interface {
		// CreateOccurrences appends the given records as one atomic batch:
		// either all of them become visible to readers or none do.
		CreateOccurrences(occs ...Occurrence) ([]Occurrence, error)
		QueryAllOccurrences() ([]Occurrence, error)
		GetOccurrenceByID(id string) (Occurrence, error)
		// QueryOccurrencesByStudent returns records sorted by date descending;
		// ties keep their original insertion order.
		QueryOccurrencesByStudent(studentID string) ([]Occurrence, error)
		// QueryOccurrencesByGroup returns all records sharing the exact
		// groupID, in insertion order. Display ordering is the caller's concern.
		QueryOccurrencesByGroup(groupID string) ([]Occurrence, error)
		DeleteOccurrenceByID(id string) error
	}

	// StudentGetter resolves a student ID at creation time.
	StudentGetter interface {
		GetStudentByID(id string) (student.Student, error)
	}

	Service struct {
		repo     Repository
		students StudentGetter
		mailSvc  core.EmailService
	}
)

func NewService(repo Repository, students StudentGetter, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, students: students, mailSvc: mailSvc}
}

// Add registers one occurrence against a single student. The record's author
// snapshot is actor.Name and no group correlation is set.
func (svc *Service) Add(actor auth.User, no NewOccurrence) (Occurrence, error) {
	if err := no.Validate(); err != nil {
		return Occurrence{}, err
	}
	stu, err := svc.students.GetStudentByID(no.StudentID)
	if err != nil {
		return Occurrence{}, err
	}

	occ := Occurrence{
		ID:           uuid.New().String(),
		StudentID:    no.StudentID,
		Date:         dateOrNow(no.Date),
		Title:        no.Title,
		Description:  no.Description,
		Category:     no.Category,
		RegisteredBy: actor.Name,
	}
	created, err := svc.repo.CreateOccurrences(occ)
	if err != nil {
		return Occurrence{}, err
	}
	svc.notifyOffice(created[0], stu)
	return created[0], nil
}

// AddGroup registers the same occurrence against every student in
// ng.StudentIDs: one freshly-ID'd record per student, all sharing one fresh
// group ID, appended as a single batch. A group of one still gets a group ID.
// Every student ID must resolve before anything is written.
func (svc *Service) AddGroup(actor auth.User, ng NewGroupOccurrence) ([]Occurrence, error) {
	if err := ng.Validate(); err != nil {
		return nil, err
	}
	studs := make([]student.Student, 0, len(ng.StudentIDs))
	for _, id := range ng.StudentIDs {
		stu, err := svc.students.GetStudentByID(id)
		if err != nil {
			return nil, err
		}
		studs = append(studs, stu)
	}

	groupID := uuid.New().String()
	date := dateOrNow(ng.Date)
	occs := make([]Occurrence, 0, len(ng.StudentIDs))
	for _, id := range ng.StudentIDs {
		occs = append(occs, Occurrence{
			ID:           uuid.New().String(),
			StudentID:    id,
			GroupID:      groupID,
			Date:         date,
			Title:        ng.Title,
			Description:  ng.Description,
			Category:     ng.Category,
			RegisteredBy: actor.Name,
		})
	}
	created, err := svc.repo.CreateOccurrences(occs...)
	if err != nil {
		return nil, err
	}
	svc.notifyOffice(created[0], studs...)
	return created, nil
}

// Delete removes exactly the occurrence with the given ID; group siblings
// are left untouched. The deletion policy (author or admin) is enforced
// here in addition to being available via auth.CanDeleteOccurrence.
func (svc *Service) Delete(actor auth.User, id string) error {
	occ, err := svc.repo.GetOccurrenceByID(id)
	if err != nil {
		return err
	}
	if !auth.CanDeleteOccurrence(actor, occ) {
		return core.ErrPermissionDenied
	}
	return svc.repo.DeleteOccurrenceByID(id)
}

func (svc *Service) GetByID(id string) (Occurrence, error) {
	return svc.repo.GetOccurrenceByID(id)
}

func (svc *Service) QueryAll() ([]Occurrence, error) {
	return svc.repo.QueryAllOccurrences()
}

func (svc *Service) QueryByStudent(studentID string) ([]Occurrence, error) {
	return svc.repo.QueryOccurrencesByStudent(studentID)
}

func (svc *Service) QueryByGroup(groupID string) ([]Occurrence, error) {
	return svc.repo.QueryOccurrencesByGroup(groupID)
}

// notifyOffice emails the school office about medical occurrences.
// Best-effort: the mutation already succeeded and is never rolled back here.
func (svc *Service) notifyOffice(occ Occurrence, studs ...student.Student) {
	if svc.mailSvc == nil || occ.Category != CategoryMedical {
		return
	}
	names := make([]string, 0, len(studs))
	for _, stu := range studs {
		names = append(names, stu.Name)
	}
	msg := &core.EmailMessage{
		To:      []mail.Address{{Address: core.Conf.GetString("officeEmail")}},
		Subject: "Ocorrência médica: " + occ.Title,
		BodyStr: fmt.Sprintf(
			"Ocorrência médica registrada por %s em %s.\n\nAluno(s): %s\n\n%s",
			occ.RegisteredBy, occ.Date.Format("02/01/2006"), strings.Join(names, ", "), occ.Description,
		),
	}
	svc.mailSvc.SendMessages(msg)
}

func dateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

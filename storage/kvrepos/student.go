package kvrepos

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/escolabase/carometro/core"
	"github.com/escolabase/carometro/core/student"
)

// studentsKey matches the key used by the legacy browser app, so an exported
// localStorage dump can be imported as-is.
const studentsKey = "carometro_students"

type studentRepository struct {
	store core.Store
	log   core.Logger

	mutex    sync.RWMutex
	students []student.Student
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

// NewStudentRepository loads the student collection from store, seeding it
// on first run or when the stored value cannot be decoded. Every mutation
// writes the whole collection back through store before returning.
func NewStudentRepository(store core.Store, logger core.Logger) (student.Repository, error) {
	var students []student.Student
	found, err := store.Load(studentsKey, &students)
	if err != nil {
		if errors.Cause(err) != core.ErrMalformedData {
			return nil, err
		}
		logger.Warn(fmt.Sprintf("stored students unreadable, falling back to seed: %v", err))
		found = false
	}
	if !found {
		students = student.Seed()
		if err := store.Save(studentsKey, students); err != nil {
			return nil, err
		}
	}
	return &studentRepository{store: store, log: logger, students: students}, nil
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, len(repo.students))
	copy(students, repo.students)
	return students
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	for _, stu := range repo.students {
		if stu.ID == id {
			return stu, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(shift, grade string) ([]student.Student, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	students := make([]student.Student, 0, len(repo.students))
	for _, stu := range repo.students {
		if shift != student.ShiftAll && stu.Shift != shift {
			continue
		}
		if grade != student.GradeAll && stu.Grade != grade {
			continue
		}
		students = append(students, stu)
	}
	return students, nil
}

func (repo *studentRepository) ReplaceStudent(s student.Student) (student.Student, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	idx := -1
	for i, stu := range repo.students {
		if stu.ID == s.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return student.Student{}, student.ErrNotFound
	}

	students := repo.query()
	students[idx] = s
	if err := repo.store.Save(studentsKey, students); err != nil {
		return student.Student{}, err
	}
	repo.students = students
	return s, nil
}

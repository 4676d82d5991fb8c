package kvrepos

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/escolabase/carometro/core"
	"github.com/escolabase/carometro/core/occurrence"
)

// occurrencesKey matches the key used by the legacy browser app.
const occurrencesKey = "carometro_occurrences"

type occurrenceRepository struct {
	store core.Store
	log   core.Logger

	mutex       sync.RWMutex
	occurrences []occurrence.Occurrence
}

var _ occurrence.Repository = (*occurrenceRepository)(nil) // interface compliance check

// NewOccurrenceRepository loads the occurrence collection from store,
// starting empty on first run or when the stored value cannot be decoded.
func NewOccurrenceRepository(store core.Store, logger core.Logger) (occurrence.Repository, error) {
	var occs []occurrence.Occurrence
	found, err := store.Load(occurrencesKey, &occs)
	if err != nil {
		if errors.Cause(err) != core.ErrMalformedData {
			return nil, err
		}
		logger.Warn(fmt.Sprintf("stored occurrences unreadable, starting empty: %v", err))
		found = false
	}
	if !found {
		occs = make([]occurrence.Occurrence, 0)
	}
	return &occurrenceRepository{store: store, log: logger, occurrences: occs}, nil
}

func (repo *occurrenceRepository) query() []occurrence.Occurrence {
	occs := make([]occurrence.Occurrence, len(repo.occurrences))
	copy(occs, repo.occurrences)
	return occs
}

func (repo *occurrenceRepository) CreateOccurrences(occs ...occurrence.Occurrence) ([]occurrence.Occurrence, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	// single whole-collection write: readers never observe a partial batch
	updated := append(repo.query(), occs...)
	if err := repo.store.Save(occurrencesKey, updated); err != nil {
		return nil, err
	}
	repo.occurrences = updated
	return occs, nil
}

func (repo *occurrenceRepository) QueryAllOccurrences() ([]occurrence.Occurrence, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *occurrenceRepository) GetOccurrenceByID(id string) (occurrence.Occurrence, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	for _, occ := range repo.occurrences {
		if occ.ID == id {
			return occ, nil
		}
	}
	return occurrence.Occurrence{}, occurrence.ErrNotFound
}

func (repo *occurrenceRepository) QueryOccurrencesByStudent(studentID string) ([]occurrence.Occurrence, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	occs := make([]occurrence.Occurrence, 0, len(repo.occurrences))
	for _, occ := range repo.occurrences {
		if occ.StudentID == studentID {
			occs = append(occs, occ)
		}
	}
	// most recent first; ties keep insertion order
	sort.SliceStable(occs, func(i, j int) bool { return occs[i].Date.After(occs[j].Date) })
	return occs, nil
}

func (repo *occurrenceRepository) QueryOccurrencesByGroup(groupID string) ([]occurrence.Occurrence, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	occs := make([]occurrence.Occurrence, 0, len(repo.occurrences))
	for _, occ := range repo.occurrences {
		if occ.GroupID != "" && occ.GroupID == groupID {
			occs = append(occs, occ)
		}
	}
	return occs, nil
}

func (repo *occurrenceRepository) DeleteOccurrenceByID(id string) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	idx := -1
	for i, occ := range repo.occurrences {
		if occ.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return occurrence.ErrNotFound
	}

	updated := append(repo.query()[:idx], repo.occurrences[idx+1:]...)
	if err := repo.store.Save(occurrencesKey, updated); err != nil {
		return err
	}
	repo.occurrences = updated
	return nil
}

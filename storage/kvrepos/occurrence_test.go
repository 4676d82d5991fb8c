package kvrepos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolabase/carometro/core/occurrence"
	inmemkv "github.com/escolabase/carometro/storage/kv/inmem"
	testutil "github.com/escolabase/carometro/tests"
)

func setupOccurrences(t *testing.T) (*inmemkv.Store, occurrence.Repository) {
	store := inmemkv.Open()
	repo, err := NewOccurrenceRepository(store, testutil.Logger{})
	if err != nil {
		t.Fatalf("setupOccurrences() failed: %v", err)
	}
	return store, repo
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d.UTC()
}

func TestOccurrenceRepository_startsEmpty(t *testing.T) {
	t.Run("first run", func(t *testing.T) {
		_, repo := setupOccurrences(t)
		occs, err := repo.QueryAllOccurrences()
		require.NoError(t, err)
		assert.Empty(t, occs)
	})

	t.Run("malformed data falls back to empty", func(t *testing.T) {
		store := inmemkv.Open()
		store.SaveRaw(occurrencesKey, []byte(`{"not":"a list"`))

		repo, err := NewOccurrenceRepository(store, testutil.Logger{})
		require.NoError(t, err)

		occs, err := repo.QueryAllOccurrences()
		require.NoError(t, err)
		assert.Empty(t, occs)
	})
}

func TestOccurrenceRepository_CreateOccurrences(t *testing.T) {
	store, repo := setupOccurrences(t)

	occ := testutil.CreateOccurrence(t, repo, "1", "Atraso", "Prof. Eduardo", date("2024-01-10"))

	got, err := repo.GetOccurrenceByID(occ.ID)
	require.NoError(t, err)
	assert.Equal(t, occ, got)
	assert.Empty(t, got.GroupID)

	// write-through: a repo rebuilt from the same store sees the record
	repo2, err := NewOccurrenceRepository(store, testutil.Logger{})
	require.NoError(t, err)
	got, err = repo2.GetOccurrenceByID(occ.ID)
	require.NoError(t, err)
	assert.Equal(t, occ, got)
}

func TestOccurrenceRepository_GetOccurrenceByID_notFound(t *testing.T) {
	_, repo := setupOccurrences(t)
	_, err := repo.GetOccurrenceByID(uuid.New().String())
	assert.Equal(t, occurrence.ErrNotFound, err)
}

func TestOccurrenceRepository_QueryOccurrencesByStudent(t *testing.T) {
	_, repo := setupOccurrences(t)

	jan := testutil.CreateOccurrence(t, repo, "1", "Janeiro", "Prof. Eduardo", date("2024-01-10"))
	mar := testutil.CreateOccurrence(t, repo, "1", "Março", "Prof. Eduardo", date("2024-03-01"))
	feb := testutil.CreateOccurrence(t, repo, "1", "Fevereiro", "Prof. Eduardo", date("2024-02-15"))
	testutil.CreateOccurrence(t, repo, "2", "Outro aluno", "Prof. Eduardo", date("2024-02-20"))

	occs, err := repo.QueryOccurrencesByStudent("1")
	require.NoError(t, err)
	assert.Equal(t, []occurrence.Occurrence{mar, feb, jan}, occs)
}

func TestOccurrenceRepository_QueryOccurrencesByStudent_stableTies(t *testing.T) {
	_, repo := setupOccurrences(t)

	first := testutil.CreateOccurrence(t, repo, "1", "Primeira", "Prof. Eduardo", date("2024-02-15"))
	second := testutil.CreateOccurrence(t, repo, "1", "Segunda", "Prof. Eduardo", date("2024-02-15"))
	older := testutil.CreateOccurrence(t, repo, "1", "Antiga", "Prof. Eduardo", date("2024-01-01"))

	occs, err := repo.QueryOccurrencesByStudent("1")
	require.NoError(t, err)
	assert.Equal(t, []occurrence.Occurrence{first, second, older}, occs)
}

func TestOccurrenceRepository_groups(t *testing.T) {
	_, repo := setupOccurrences(t)

	groupID := uuid.New().String()
	batch := make([]occurrence.Occurrence, 0, 3)
	for _, studentID := range []string{"1", "2", "3"} {
		batch = append(batch, occurrence.Occurrence{
			ID:           uuid.New().String(),
			StudentID:    studentID,
			GroupID:      groupID,
			Date:         date("2024-05-02"),
			Title:        "Excursão",
			Category:     occurrence.CategoryOther,
			RegisteredBy: "Profa. Márcia",
		})
	}
	created, err := repo.CreateOccurrences(batch...)
	require.NoError(t, err)
	require.Len(t, created, 3)

	t.Run("listByGroup returns exactly the members", func(t *testing.T) {
		occs, err := repo.QueryOccurrencesByGroup(groupID)
		require.NoError(t, err)
		assert.Equal(t, batch, occs)
	})

	t.Run("empty group id matches nothing", func(t *testing.T) {
		occs, err := repo.QueryOccurrencesByGroup("")
		require.NoError(t, err)
		assert.Empty(t, occs)
	})

	t.Run("deleting one member spares its siblings", func(t *testing.T) {
		require.NoError(t, repo.DeleteOccurrenceByID(batch[1].ID))

		occs, err := repo.QueryOccurrencesByGroup(groupID)
		require.NoError(t, err)
		assert.Equal(t, []occurrence.Occurrence{batch[0], batch[2]}, occs)

		_, err = repo.GetOccurrenceByID(batch[1].ID)
		assert.Equal(t, occurrence.ErrNotFound, err)
		for _, sibling := range []occurrence.Occurrence{batch[0], batch[2]} {
			got, err := repo.GetOccurrenceByID(sibling.ID)
			require.NoError(t, err)
			assert.Equal(t, sibling, got)
		}
	})
}

func TestOccurrenceRepository_DeleteOccurrenceByID(t *testing.T) {
	store, repo := setupOccurrences(t)

	occ := testutil.CreateOccurrence(t, repo, "1", "Atraso", "Prof. Eduardo", date("2024-01-10"))
	keep := testutil.CreateOccurrence(t, repo, "2", "Outra", "Prof. Eduardo", date("2024-01-11"))

	require.NoError(t, repo.DeleteOccurrenceByID(occ.ID))
	assert.Equal(t, occurrence.ErrNotFound, repo.DeleteOccurrenceByID(occ.ID))

	occs, err := repo.QueryAllOccurrences()
	require.NoError(t, err)
	assert.Equal(t, []occurrence.Occurrence{keep}, occs)

	// the deletion is persisted
	repo2, err := NewOccurrenceRepository(store, testutil.Logger{})
	require.NoError(t, err)
	occs, err = repo2.QueryAllOccurrences()
	require.NoError(t, err)
	assert.Equal(t, []occurrence.Occurrence{keep}, occs)
}

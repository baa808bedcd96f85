package repositoryImp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herdbook/entities"
	statusRepo "herdbook/pkg/status/repository"
	"herdbook/pkg/status/repositoryImp"
	"herdbook/pkg/testdb"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func TestLatestForBoar(t *testing.T) {
	db := testdb.Open(t)
	repo := repositoryImp.New(db)

	require.NoError(t, repo.Create(&entities.Status{
		BoarID: 1, Status: entities.StatusProducible, StartOn: day(t, "2024-01-01"),
	}))
	require.NoError(t, repo.Create(&entities.Status{
		BoarID: 1, Status: entities.StatusCaution, StartOn: day(t, "2024-03-01"),
	}))
	require.NoError(t, repo.Create(&entities.Status{
		BoarID: 1, Status: entities.StatusNotProducible, StartOn: day(t, "2024-02-01"),
	}))

	latest, err := repo.LatestForBoar(1)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCaution, latest.Status)
}

func TestLatestForBoar_TieBreaksOnHighestID(t *testing.T) {
	db := testdb.Open(t)
	repo := repositoryImp.New(db)

	first := &entities.Status{
		BoarID: 1, Status: entities.StatusProducible, StartOn: day(t, "2024-01-01"),
	}
	second := &entities.Status{
		BoarID: 1, Status: entities.StatusCaution, StartOn: day(t, "2024-01-01"),
	}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	latest, err := repo.LatestForBoar(1)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestLatestForBoar_Missing(t *testing.T) {
	db := testdb.Open(t)
	repo := repositoryImp.New(db)

	_, err := repo.LatestForBoar(42)
	require.ErrorIs(t, err, statusRepo.ErrNotFound)
}

func TestRecentForBoar_LimitsToFive(t *testing.T) {
	db := testdb.Open(t)
	repo := repositoryImp.New(db)

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(&entities.Status{
			BoarID:  1,
			Status:  entities.StatusProducible,
			StartOn: day(t, "2024-01-01").AddDate(0, 0, i),
		}))
	}

	recent, err := repo.RecentForBoar(1, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	// Newest first.
	assert.True(t, recent[0].StartOn.After(recent[4].StartOn))
}

func TestRecentForBoar_IgnoresOtherBoars(t *testing.T) {
	db := testdb.Open(t)
	repo := repositoryImp.New(db)

	require.NoError(t, repo.Create(&entities.Status{
		BoarID: 1, Status: entities.StatusProducible, StartOn: day(t, "2024-01-01"),
	}))
	require.NoError(t, repo.Create(&entities.Status{
		BoarID: 2, Status: entities.StatusCaution, StartOn: day(t, "2024-01-02"),
	}))

	recent, err := repo.RecentForBoar(1, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, uint(1), recent[0].BoarID)
}

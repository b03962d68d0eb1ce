package repository

import (
	"sync"
	"testing"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster() ([]models.Force, []models.Division) {
	forces := []models.Force{
		{ID: "force-1", Name: "F1", DivisionID: "north", Status: models.ForceStatusDeployed},
		{ID: "force-2", Name: "F2", DivisionID: "north", Status: models.ForceStatusAvailable},
		{ID: "force-3", Name: "F3", DivisionID: "south", Status: models.ForceStatusAvailable},
	}
	divisions := []models.Division{
		{ID: "north", Name: "North Division", FatigueLevel: 40},
		{ID: "south", Name: "South Division", FatigueLevel: 75},
	}
	return forces, divisions
}

func isAvailable(f models.Force) bool { return f.Status == models.ForceStatusAvailable }

func TestNewForceRepository_DuplicateID(t *testing.T) {
	forces, divisions := roster()
	forces = append(forces, forces[0])

	_, err := NewForceRepository(forces, divisions)

	require.ErrorIs(t, err, service.ErrDuplicateID)
}

func TestForceRepository_ClaimFirstInRosterOrder(t *testing.T) {
	forces, divisions := roster()
	repo, err := NewForceRepository(forces, divisions)
	require.NoError(t, err)

	claimed, ok := repo.ClaimFirst(isAvailable, func(f *models.Force) {
		f.Status = models.ForceStatusDeployed
	})

	require.True(t, ok)
	assert.Equal(t, "force-2", claimed.ID)
	got, _ := repo.GetForce("force-2")
	assert.Equal(t, models.ForceStatusDeployed, got.Status)
}

func TestForceRepository_ClaimFirstNoneLeft(t *testing.T) {
	forces, divisions := roster()
	repo, err := NewForceRepository(forces, divisions)
	require.NoError(t, err)

	deploy := func(f *models.Force) { f.Status = models.ForceStatusDeployed }
	repo.ClaimFirst(isAvailable, deploy)
	repo.ClaimFirst(isAvailable, deploy)

	_, ok := repo.ClaimFirst(isAvailable, deploy)
	assert.False(t, ok)
}

func TestForceRepository_ConcurrentClaimsAreExclusive(t *testing.T) {
	forces, divisions := roster()
	repo, err := NewForceRepository(forces, divisions)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		claimed = map[string]int{}
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, ok := repo.ClaimFirst(isAvailable, func(f *models.Force) { f.Status = models.ForceStatusDeployed })
			if ok {
				mu.Lock()
				claimed[f.ID]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, map[string]int{"force-2": 1, "force-3": 1}, claimed)
}

func TestForceRepository_UpdateForceRespectsMatch(t *testing.T) {
	forces, divisions := roster()
	repo, err := NewForceRepository(forces, divisions)
	require.NoError(t, err)

	_, ok := repo.UpdateForce("force-2", func(f models.Force) bool { return f.Status == models.ForceStatusDeployed }, func(f *models.Force) {
		f.Location = "Moved"
	})
	assert.False(t, ok)

	got, _ := repo.GetForce("force-2")
	assert.NotEqual(t, "Moved", got.Location)

	_, ok = repo.UpdateForce("force-9", func(models.Force) bool { return true }, func(*models.Force) {})
	assert.False(t, ok)
}

func TestForceRepository_Divisions(t *testing.T) {
	forces, divisions := roster()
	repo, err := NewForceRepository(forces, divisions)
	require.NoError(t, err)

	updated, ok := repo.UpdateDivision("south", func(d *models.Division) { d.FatigueLevel = 0 })
	require.True(t, ok)
	assert.Equal(t, 0, updated.FatigueLevel)

	list := repo.ListDivisions()
	require.Len(t, list, 2)
	assert.Equal(t, "north", list[0].ID)

	_, ok = repo.GetDivision("west")
	assert.False(t, ok)
}

func TestForceRepository_CopiesInput(t *testing.T) {
	forces, divisions := roster()
	repo, err := NewForceRepository(forces, divisions)
	require.NoError(t, err)

	forces[0].Name = "Changed"

	got, _ := repo.GetForce("force-1")
	assert.Equal(t, "F1", got.Name)
}

package generator

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)), DefaultVocabulary())
}

func TestIncidents_WellFormed(t *testing.T) {
	gen := newTestGenerator(42)
	vocab := DefaultVocabulary()

	incidents := gen.Incidents(200)
	require.Len(t, incidents, 200)

	ids := make(map[string]struct{}, len(incidents))
	for _, inc := range incidents {
		assert.True(t, strings.HasPrefix(inc.ID, IncidentIDPrefix))
		assert.NotEmpty(t, inc.Type)
		assert.NotEmpty(t, inc.Location)
		assert.NotEmpty(t, inc.TimeReported)
		assert.NotEmpty(t, inc.Description)
		assert.True(t, inc.Severity.Valid(), "severity %q", inc.Severity)
		assert.True(t, inc.Status.Valid(), "status %q", inc.Status)
		assert.NotEqual(t, models.IncidentStatusClosed, inc.Status)

		assert.LessOrEqual(t, math.Abs(inc.Coordinates.Lat-vocab.Center.Lat), vocab.Spread)
		assert.LessOrEqual(t, math.Abs(inc.Coordinates.Lng-vocab.Center.Lng), vocab.Spread)

		_, dup := ids[inc.ID]
		assert.False(t, dup, "duplicate id %s", inc.ID)
		ids[inc.ID] = struct{}{}
	}
}

func TestIncidents_DeterministicForSeed(t *testing.T) {
	first := newTestGenerator(7).Incidents(5)
	second := newTestGenerator(7).Incidents(5)

	assert.Equal(t, first, second)
}

func TestForces_RespectDeploymentInvariant(t *testing.T) {
	gen := newTestGenerator(1)
	divisionIDs := make(map[string]struct{})
	for _, d := range DefaultVocabulary().Divisions {
		divisionIDs[d.ID] = struct{}{}
	}

	forces := gen.Forces(100)
	require.Len(t, forces, 100)

	for _, f := range forces {
		assert.True(t, strings.HasPrefix(f.ID, ForceIDPrefix))
		assert.NotEmpty(t, f.Name)
		assert.GreaterOrEqual(t, f.Personnel, 3)
		assert.LessOrEqual(t, f.Personnel, 12)
		assert.True(t, strings.HasSuffix(f.HomeBase, " Station"))
		assert.Contains(t, divisionIDs, f.DivisionID)

		switch f.Status {
		case models.ForceStatusDeployed:
			assert.NotEmpty(t, f.Incident)
			assert.NotEmpty(t, f.DeployedTime)
		case models.ForceStatusAvailable:
			assert.Empty(t, f.Incident)
			assert.Equal(t, f.HomeBase, f.Location)
		default:
			t.Fatalf("unexpected status %q", f.Status)
		}
	}
}

func TestForces_NamesFollowType(t *testing.T) {
	gen := newTestGenerator(3)

	for _, f := range gen.Forces(60) {
		switch f.Type {
		case models.ForceTypePolice:
			assert.Contains(t, f.Name, "Police Unit")
		case models.ForceTypeFire:
			assert.Contains(t, f.Name, "Fire Brigade")
		case models.ForceTypeMedical:
			assert.Contains(t, f.Name, "Emergency Medical Team")
		case models.ForceTypeDisaster:
			assert.Contains(t, f.Name, "NDRF Team")
		}
	}
}

func TestDivisions_FixedOrderAndBounds(t *testing.T) {
	gen := newTestGenerator(9)

	divisions := gen.Divisions()
	require.Len(t, divisions, 5)

	expectedOrder := []string{"north", "south", "east", "west", "central"}
	for i, d := range divisions {
		assert.Equal(t, expectedOrder[i], d.ID)
		assert.GreaterOrEqual(t, d.FatigueLevel, 0)
		assert.LessOrEqual(t, d.FatigueLevel, 100)
		assert.GreaterOrEqual(t, d.CallsHandled, 10)
		assert.True(t, strings.HasSuffix(d.ActiveTime, "h"))
	}
}

func TestPoint_WithinSpread(t *testing.T) {
	gen := newTestGenerator(11)
	vocab := DefaultVocabulary()

	for i := 0; i < 50; i++ {
		p := gen.Point()
		assert.InDelta(t, vocab.Center.Lat, p.Lat, vocab.Spread)
		assert.InDelta(t, vocab.Center.Lng, p.Lng, vocab.Spread)
	}
}

func TestPromotedIncidentID(t *testing.T) {
	gen := newTestGenerator(7)

	first := gen.PromotedIncidentID()
	second := gen.PromotedIncidentID()

	assert.True(t, strings.HasPrefix(first, PromotedIDPrefix))
	assert.NotEqual(t, first, second)
}

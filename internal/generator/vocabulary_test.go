package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVocabulary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadVocabulary_OverridesSections(t *testing.T) {
	path := writeVocabulary(t, `
center:
  lat: 19.076
  lng: 72.8777
locations:
  - Bandra
  - Colaba
incident_types:
  - Flooding
`)

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, 19.076, vocab.Center.Lat)
	assert.Equal(t, []string{"Bandra", "Colaba"}, vocab.Locations)
	assert.Equal(t, []string{"Flooding"}, vocab.IncidentTypes)
	// Незаданные разделы остаются по умолчанию
	assert.Equal(t, DefaultVocabulary().Stations, vocab.Stations)
	assert.Len(t, vocab.Divisions, 5)
}

func TestLoadVocabulary_DuplicateDivision(t *testing.T) {
	path := writeVocabulary(t, `
divisions:
  - id: north
    name: North
  - id: north
    name: North again
`)

	_, err := LoadVocabulary(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "duplicate division id")
}

func TestLoadVocabulary_MissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read vocabulary file")
}

func TestLoadVocabulary_InvalidYAML(t *testing.T) {
	path := writeVocabulary(t, "locations: [unterminated")

	_, err := LoadVocabulary(path)
	require.Error(t, err)
}

func TestDefaultVocabulary_EventsAndRoutes(t *testing.T) {
	vocab := DefaultVocabulary()

	require.NoError(t, vocab.Validate())
	assert.Len(t, vocab.DetectedEvents, 5)
	assert.Len(t, vocab.EvacuationRoutes, 3)
	assert.Equal(t, "Emergency Line", vocab.DetectedEvents[3].Source)
	assert.Equal(t, "blocked", string(vocab.EvacuationRoutes[1].Status))
}

func TestLoadVocabulary_DetectedEvents(t *testing.T) {
	path := writeVocabulary(t, `
detected_events:
  - id: e1
    source: Twitter
    text: Tree fall blocking Sankey Road
    location: Sadashivanagar
    severity: low
evacuation_routes:
  - id: r1
    name: Hebbal to Yelahanka
    from_location: Hebbal
    to_location: Yelahanka
    status: clear
    congestion: low
`)

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)

	require.Len(t, vocab.DetectedEvents, 1)
	assert.Equal(t, "Sadashivanagar", vocab.DetectedEvents[0].Location)
	require.Len(t, vocab.EvacuationRoutes, 1)
	assert.Equal(t, "Yelahanka", vocab.EvacuationRoutes[0].ToLocation)
}

func TestLoadVocabulary_InvalidEventSeverity(t *testing.T) {
	path := writeVocabulary(t, `
detected_events:
  - id: e1
    source: Twitter
    text: Something happened
    severity: extreme
`)

	_, err := LoadVocabulary(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown severity")
}

func TestLoadVocabulary_InvalidRouteStatus(t *testing.T) {
	path := writeVocabulary(t, `
evacuation_routes:
  - id: r1
    name: Somewhere
    status: flooded
`)

	_, err := LoadVocabulary(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown status")
}

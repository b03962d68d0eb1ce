package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/notify/mocks"
	"github.com/shenikar/city_command_center/internal/repository"
	"github.com/shenikar/city_command_center/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIncidentService(t *testing.T) (service.IncidentService, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	ids := &sequentialIDs{ids: []string{"inc-gen-1", "inc-gen-2", "inc-gen-3"}}
	svc := service.NewIncidentService(repository.NewIncidentRepository(), ids, sink, newTestLogger())
	return svc, sink
}

func TestCreateIncident_PrependsAndNotifies(t *testing.T) {
	// Подготовка
	svc, sink := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-1", models.SeverityLow)))
	second := testIncident("inc-2", models.SeverityMedium)
	second.Type = "Tree Fall"
	require.NoError(t, svc.CreateIncident(ctx, second))

	// Проверки
	incidents := svc.ListIncidents(ctx)
	require.Len(t, incidents, 2)
	assert.Equal(t, "inc-2", incidents[0].ID)
	assert.Equal(t, "inc-1", incidents[1].ID)

	sent := sink.All()
	require.Len(t, sent, 2)
	assert.Equal(t, models.NotificationSuccess, sent[1].Kind)
	assert.Contains(t, sent[1].Message, "Tree Fall")
	assert.False(t, sent[1].Urgent)
}

func TestCreateIncident_RegeneratesCollidingID(t *testing.T) {
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-1", models.SeverityLow)))
	duplicate := testIncident("inc-1", models.SeverityHigh)
	require.NoError(t, svc.CreateIncident(ctx, duplicate))

	assert.Equal(t, "inc-gen-1", duplicate.ID)
	incidents := svc.ListIncidents(ctx)
	require.Len(t, incidents, 2)
	assert.Equal(t, "inc-gen-1", incidents[0].ID)
	assert.Equal(t, models.SeverityHigh, incidents[0].Severity)
}

func TestCreateIncident_FillsDefaults(t *testing.T) {
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()

	incident := &models.Incident{Type: "Power Outage", Severity: models.SeverityMedium, Location: "Hebbal"}
	require.NoError(t, svc.CreateIncident(ctx, incident))

	assert.Equal(t, "inc-gen-1", incident.ID)
	assert.Equal(t, models.IncidentStatusNew, incident.Status)
	assert.Equal(t, service.TimeReportedJustNow, incident.TimeReported)
}

func TestCreateIncident_InvalidSeverity(t *testing.T) {
	svc, sink := newTestIncidentService(t)

	err := svc.CreateIncident(context.Background(), testIncident("inc-1", "catastrophic"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidSeverity))
	assert.Empty(t, svc.ListIncidents(context.Background()))
	assert.Empty(t, sink.All())
}

func TestCreateIncident_PanickingSinkKeepsState(t *testing.T) {
	ids := &sequentialIDs{ids: []string{"inc-gen-1"}}
	svc := service.NewIncidentService(repository.NewIncidentRepository(), ids, panicSink{}, newTestLogger())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-1", models.SeverityLow)))
	})
	assert.Len(t, svc.ListIncidents(ctx), 1)
}

func TestCloseIncident_Idempotent(t *testing.T) {
	svc, sink := newTestIncidentService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-1", models.SeverityHigh)))

	require.NoError(t, svc.CloseIncident(ctx, "inc-1"))
	once, err := svc.GetIncident(ctx, "inc-1")
	require.NoError(t, err)

	require.NoError(t, svc.CloseIncident(ctx, "inc-1"))
	twice, err := svc.GetIncident(ctx, "inc-1")
	require.NoError(t, err)

	assert.Equal(t, models.IncidentStatusClosed, once.Status)
	assert.Equal(t, once, twice)

	sent := sink.All()
	require.Len(t, sent, 3)
	assert.Equal(t, "Incident marked as resolved", sent[2].Message)
}

func TestCloseIncident_UnknownIDIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	ids := &sequentialIDs{ids: []string{"inc-gen-1"}}
	svc := service.NewIncidentService(repository.NewIncidentRepository(), ids, sink, newTestLogger())

	sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(t, svc.CloseIncident(context.Background(), "inc-missing"))
}

func TestUpdateIncident_MergesFields(t *testing.T) {
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-1", models.SeverityLow)))

	status := models.IncidentStatusInProgress
	description := "Gas supply cut off, area cordoned."
	require.NoError(t, svc.UpdateIncident(ctx, "inc-1", models.IncidentPatch{
		Status:      &status,
		Description: &description,
	}))

	got, err := svc.GetIncident(ctx, "inc-1")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusInProgress, got.Status)
	assert.Equal(t, description, got.Description)
	assert.Equal(t, "Gas Leak", got.Type)
	assert.Equal(t, models.SeverityLow, got.Severity)
}

func TestUpdateIncident_IgnoresInvalidStatus(t *testing.T) {
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-1", models.SeverityLow)))

	bogus := models.IncidentStatus("escalated")
	require.NoError(t, svc.UpdateIncident(ctx, "inc-1", models.IncidentPatch{Status: &bogus}))

	got, err := svc.GetIncident(ctx, "inc-1")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusNew, got.Status)
}

func TestUpdateIncident_ClosedIsImmutable(t *testing.T) {
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-1", models.SeverityLow)))
	require.NoError(t, svc.CloseIncident(ctx, "inc-1"))

	location := "Koramangala"
	require.NoError(t, svc.UpdateIncident(ctx, "inc-1", models.IncidentPatch{Location: &location}))

	got, err := svc.GetIncident(ctx, "inc-1")
	require.NoError(t, err)
	assert.Equal(t, "Ulsoor", got.Location)
	assert.Equal(t, models.IncidentStatusClosed, got.Status)
}

func TestUpdateIncident_UnknownIDIsNoop(t *testing.T) {
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()

	location := "Koramangala"
	assert.NoError(t, svc.UpdateIncident(ctx, "inc-missing", models.IncidentPatch{Location: &location}))
	assert.Empty(t, svc.ListIncidents(ctx))
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, _ := newTestIncidentService(t)

	incident, err := svc.GetIncident(context.Background(), "inc-missing")

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.True(t, errors.Is(err, service.ErrIncidentNotFound))
}

func TestFilterBySeverity(t *testing.T) {
	svc, _ := newTestIncidentService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-1", models.SeverityLow)))
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-2", models.SeverityHigh)))
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-3", models.SeverityHigh)))

	high, err := svc.FilterBySeverity(ctx, "high")
	require.NoError(t, err)
	require.Len(t, high, 2)
	assert.Equal(t, "inc-3", high[0].ID)

	all, err := svc.FilterBySeverity(ctx, service.SeverityAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.FilterBySeverity(ctx, "urgent")
	assert.True(t, errors.Is(err, service.ErrInvalidSeverity))

	assert.Equal(t, 2, svc.HighPriorityCount(ctx))
	// Проекция не меняет хранилище
	assert.Len(t, svc.ListIncidents(ctx), 3)
}

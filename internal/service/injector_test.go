package service_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/city_command_center/internal/generator"
	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/notify/mocks"
	"github.com/shenikar/city_command_center/internal/repository"
	"github.com/shenikar/city_command_center/internal/scheduler"
	"github.com/shenikar/city_command_center/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedSource всегда синтезирует один и тот же инцидент
type fixedSource struct {
	roll     float64
	incident models.Incident
}

func (s fixedSource) Incident() models.Incident { return s.incident }
func (s fixedSource) Float64() float64          { return s.roll }

func newTestInjector(t *testing.T, source service.IncidentSource) (*service.Injector, service.IncidentService, *recordingSink, *scheduler.Manual) {
	t.Helper()
	svc, sink := newTestIncidentService(t)
	sched := scheduler.NewManual()
	injector := service.NewInjector(svc, source, sched, time.Minute, 0.3, newTestLogger())
	return injector, svc, sink, sched
}

func TestInjector_HighSeverityIsUrgent(t *testing.T) {
	source := fixedSource{roll: 0.1, incident: *testIncident("inc-high", models.SeverityHigh)}
	injector, svc, sink, sched := newTestInjector(t, source)
	ctx := context.Background()

	injector.Start(ctx)
	defer injector.Stop()
	sched.Fire()

	incidents := svc.ListIncidents(ctx)
	require.Len(t, incidents, 1)
	assert.Equal(t, "inc-high", incidents[0].ID)

	sent := sink.All()
	require.Len(t, sent, 1)
	assert.Equal(t, models.NotificationError, sent[0].Kind)
	assert.True(t, sent[0].Urgent)
	assert.Equal(t, "High Priority: Gas Leak at Ulsoor", sent[0].Message)
}

func TestInjector_LowSeverityIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	ids := &sequentialIDs{ids: []string{"inc-gen-1"}}
	svc := service.NewIncidentService(repository.NewIncidentRepository(), ids, sink, newTestLogger())
	sched := scheduler.NewManual()
	source := fixedSource{roll: 0.1, incident: *testIncident("inc-low", models.SeverityLow)}
	injector := service.NewInjector(svc, source, sched, time.Minute, 0.3, newTestLogger())

	sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	injector.Start(context.Background())
	sched.Fire()
	injector.Stop()

	incidents := svc.ListIncidents(context.Background())
	require.Len(t, incidents, 1)
	assert.Equal(t, "inc-low", incidents[0].ID)
}

func TestInjector_RollAboveProbabilitySkips(t *testing.T) {
	source := fixedSource{roll: 0.95, incident: *testIncident("inc-high", models.SeverityHigh)}
	injector, svc, sink, _ := newTestInjector(t, source)

	assert.False(t, injector.Tick(context.Background()))
	assert.Empty(t, svc.ListIncidents(context.Background()))
	assert.Empty(t, sink.All())
}

func TestInjector_InsertsAtHeadLikeCreate(t *testing.T) {
	source := fixedSource{roll: 0.0, incident: *testIncident("inc-injected", models.SeverityMedium)}
	injector, svc, _, _ := newTestInjector(t, source)
	ctx := context.Background()
	require.NoError(t, svc.CreateIncident(ctx, testIncident("inc-manual", models.SeverityLow)))

	assert.True(t, injector.Tick(ctx))

	incidents := svc.ListIncidents(ctx)
	require.Len(t, incidents, 2)
	assert.Equal(t, "inc-injected", incidents[0].ID)
}

func TestInjector_StopPreventsFurtherTicks(t *testing.T) {
	source := fixedSource{roll: 0.0, incident: *testIncident("inc-1", models.SeverityLow)}
	injector, svc, _, sched := newTestInjector(t, source)
	ctx := context.Background()

	injector.Start(ctx)
	injector.Start(ctx) // повторный запуск не создает второй таймер
	assert.Equal(t, 1, sched.Active())

	injector.Stop()
	assert.Equal(t, 0, sched.Active())

	sched.Fire()
	assert.Empty(t, svc.ListIncidents(ctx))
}

func TestInjector_ConcurrentWithCreate(t *testing.T) {
	gen := generator.New(rand.New(rand.NewSource(5)), generator.DefaultVocabulary())
	svc := service.NewIncidentService(repository.NewIncidentRepository(), gen, &recordingSink{}, newTestLogger())
	injector := service.NewInjector(svc, alwaysSource{gen}, scheduler.NewManual(), time.Minute, 1, newTestLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			injector.Tick(ctx)
		}()
		go func() {
			defer wg.Done()
			incident := gen.Incident()
			_ = svc.CreateIncident(ctx, &incident)
		}()
	}
	wg.Wait()

	incidents := svc.ListIncidents(ctx)
	assert.Len(t, incidents, 40)
	seen := make(map[string]struct{}, len(incidents))
	for _, inc := range incidents {
		_, dup := seen[inc.ID]
		assert.False(t, dup)
		seen[inc.ID] = struct{}{}
	}
}

// alwaysSource запускает синтез на каждом тике
type alwaysSource struct {
	gen *generator.Generator
}

func (s alwaysSource) Incident() models.Incident { return s.gen.Incident() }
func (s alwaysSource) Float64() float64          { return 0 }

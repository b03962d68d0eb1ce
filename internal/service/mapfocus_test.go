package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/service"
	"github.com/shenikar/city_command_center/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var bengaluru = models.Coordinates{Lat: 12.9716, Lng: 77.5946}

func TestMapService_Defaults(t *testing.T) {
	svc := service.NewMapService(bengaluru, newTestLogger())

	focus := svc.Focus(context.Background())

	assert.Equal(t, bengaluru, focus.Center)
	assert.Equal(t, models.MapTypeStandard, focus.MapType)
	assert.Equal(t, []string{service.OverlayHeatmap}, focus.ActiveOverlays)
}

func TestMapService_SetCenterAlwaysPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockMapObserver(ctrl)
	svc := service.NewMapService(bengaluru, newTestLogger())
	svc.Watch(observer)
	target := models.Coordinates{Lat: 12.9763, Lng: 77.5929}

	observer.EXPECT().
		MapChanged(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event models.MapEvent) {
			assert.Equal(t, models.MapChangeCenter, event.Change)
			assert.Equal(t, target, event.Focus.Center)
		}).
		Times(2)

	svc.SetCenter(context.Background(), target)
	svc.SetCenter(context.Background(), target)

	assert.Equal(t, target, svc.Focus(context.Background()).Center)
}

func TestMapService_SetMapTypeRejectsUnknown(t *testing.T) {
	svc := service.NewMapService(bengaluru, newTestLogger())
	ctx := context.Background()

	require.NoError(t, svc.SetMapType(ctx, models.MapTypeSatellite))
	assert.Equal(t, models.MapTypeSatellite, svc.Focus(ctx).MapType)

	err := svc.SetMapType(ctx, "terrain")
	assert.True(t, errors.Is(err, service.ErrInvalidMapType))
	assert.Equal(t, models.MapTypeSatellite, svc.Focus(ctx).MapType)
}

func TestMapService_ToggleOverlayIsSelfInverse(t *testing.T) {
	svc := service.NewMapService(bengaluru, newTestLogger())
	ctx := context.Background()

	for _, overlay := range []string{service.OverlayTraffic, service.OverlayHeatmap} {
		before := svc.Focus(ctx).ActiveOverlays

		svc.ToggleOverlay(ctx, overlay)
		svc.ToggleOverlay(ctx, overlay)

		assert.ElementsMatch(t, before, svc.Focus(ctx).ActiveOverlays, "overlay %s", overlay)
	}
}

func TestMapService_ToggleOverlayReportsState(t *testing.T) {
	svc := service.NewMapService(bengaluru, newTestLogger())
	ctx := context.Background()

	assert.True(t, svc.ToggleOverlay(ctx, service.OverlayForces))
	assert.Contains(t, svc.Focus(ctx).ActiveOverlays, service.OverlayForces)
	assert.False(t, svc.ToggleOverlay(ctx, service.OverlayForces))
	assert.NotContains(t, svc.Focus(ctx).ActiveOverlays, service.OverlayForces)
	assert.False(t, svc.ToggleOverlay(ctx, ""))
}

func TestMapService_ShowOverlayIsIdempotent(t *testing.T) {
	svc := service.NewMapService(bengaluru, newTestLogger())
	ctx := context.Background()

	svc.ShowOverlay(ctx, service.OverlaySafeZones)
	svc.ShowOverlay(ctx, service.OverlaySafeZones)

	assert.Equal(t, []string{service.OverlayHeatmap, service.OverlaySafeZones}, svc.Focus(ctx).ActiveOverlays)
}

func TestMapService_FocusIsASnapshot(t *testing.T) {
	svc := service.NewMapService(bengaluru, newTestLogger())
	ctx := context.Background()

	focus := svc.Focus(ctx)
	focus.ActiveOverlays[0] = "tampered"

	assert.Equal(t, []string{service.OverlayHeatmap}, svc.Focus(ctx).ActiveOverlays)
}

type panicObserver struct{}

func (panicObserver) MapChanged(context.Context, models.MapEvent) {
	panic("renderer crashed")
}

func TestMapService_PanickingObserverKeepsState(t *testing.T) {
	svc := service.NewMapService(bengaluru, newTestLogger())
	svc.Watch(panicObserver{})
	target := models.Coordinates{Lat: 1, Lng: 2}

	assert.NotPanics(t, func() {
		svc.SetCenter(context.Background(), target)
	})
	assert.Equal(t, target, svc.Focus(context.Background()).Center)
}

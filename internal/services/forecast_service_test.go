package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/skycast/internal/adapters/storage"
	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/ports"
)

func setupService(t *testing.T) (*ForecastService, ports.Storage) {
	t.Helper()
	store, err := storage.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewForecastService(store), store
}

// brokenStorage fails every read, as a corrupted cache would.
type brokenStorage struct{}

type brokenRepo struct{}

func (brokenRepo) Load(context.Context) (*domain.Forecast, error) {
	return nil, errors.New("disk I/O error")
}
func (brokenRepo) Save(context.Context, *domain.Forecast) error { return errors.New("read-only") }
func (brokenRepo) SetDay(context.Context, domain.Day, string, string) error {
	return errors.New("read-only")
}

func (brokenStorage) Forecasts() ports.ForecastRepository { return brokenRepo{} }
func (brokenStorage) Close() error                        { return nil }
func (brokenStorage) Migrate() error                      { return nil }

func TestForecastService_GetForecast(t *testing.T) {
	svc, _ := setupService(t)

	f, err := svc.GetForecast(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultForecast().Days, f.Days)
}

func TestForecastService_GetForecast_NilStorage(t *testing.T) {
	f, err := NewForecastService(nil).GetForecast(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "My Location", f.Location)
}

func TestForecastService_GetForecast_FallsBackOnError(t *testing.T) {
	f, err := NewForecastService(brokenStorage{}).GetForecast(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultForecast().Current, f.Current)
}

func TestForecastService_UpdateDay(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	t.Run("keeps icon when omitted", func(t *testing.T) {
		f, err := svc.UpdateDay(ctx, UpdateDayRequest{Index: 3, Temperature: " 44°F "})
		require.NoError(t, err)
		assert.Equal(t, "44°F", f.Days[domain.Thursday].Temperature)
		assert.Equal(t, domain.IconRain, f.Days[domain.Thursday].Icon)
	})

	t.Run("sets icon", func(t *testing.T) {
		f, err := svc.UpdateDay(ctx, UpdateDayRequest{Index: 6, Temperature: "30°F", Icon: domain.IconSnow})
		require.NoError(t, err)
		assert.Equal(t, domain.IconSnow, f.Days[domain.Sunday].Icon)
	})

	t.Run("invalid day", func(t *testing.T) {
		_, err := svc.UpdateDay(ctx, UpdateDayRequest{Index: 7, Temperature: "1°F"})
		assert.ErrorIs(t, err, domain.ErrInvalidDay)
	})

	t.Run("empty temperature", func(t *testing.T) {
		_, err := svc.UpdateDay(ctx, UpdateDayRequest{Index: 0, Temperature: "  "})
		assert.ErrorIs(t, err, domain.ErrEmptyTemperature)
	})
}

func TestForecastService_UpdateDay_NilStorage(t *testing.T) {
	_, err := NewForecastService(nil).UpdateDay(context.Background(), UpdateDayRequest{Index: 1, Temperature: "60°F"})
	assert.Error(t, err)
}

func TestForecastService_ResetForecast(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.UpdateDay(ctx, UpdateDayRequest{Index: 0, Temperature: "99°F"})
	require.NoError(t, err)
	require.NoError(t, svc.ResetForecast(ctx))

	f, err := svc.GetForecast(ctx)
	require.NoError(t, err)
	assert.Equal(t, "56°F", f.Days[domain.Monday].Temperature)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/logger"
	"github.com/xvierd/skycast/internal/ports"
)

// ForecastService handles forecast use cases. It never fails to produce
// a forecast: any storage problem falls back to the built-in one.
type ForecastService struct {
	storage ports.Storage
}

// NewForecastService creates a new forecast service. A nil storage is
// allowed and always yields the built-in forecast.
func NewForecastService(storage ports.Storage) *ForecastService {
	return &ForecastService{storage: storage}
}

// Ensure ForecastService implements ports.ForecastProvider.
var _ ports.ForecastProvider = (*ForecastService)(nil)

// GetForecast returns the cached forecast or the built-in one.
func (s *ForecastService) GetForecast(ctx context.Context) (domain.Forecast, error) {
	if s.storage == nil {
		return domain.DefaultForecast(), nil
	}

	f, err := s.storage.Forecasts().Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrForecastNotFound) {
			logger.Warn("forecast cache unreadable, using built-in forecast", "err", err)
		}
		return domain.DefaultForecast(), nil
	}
	return *f, nil
}

// UpdateDayRequest contains data to change one forecast row.
type UpdateDayRequest struct {
	Index       int
	Temperature string
	Icon        string
}

// UpdateDay changes the temperature, and optionally the icon, of one row.
func (s *ForecastService) UpdateDay(ctx context.Context, req UpdateDayRequest) (domain.Forecast, error) {
	day, err := domain.ParseDay(req.Index)
	if err != nil {
		return domain.Forecast{}, err
	}

	temp := strings.TrimSpace(req.Temperature)
	if temp == "" {
		return domain.Forecast{}, domain.ErrEmptyTemperature
	}
	if s.storage == nil {
		return domain.Forecast{}, fmt.Errorf("forecast cache unavailable")
	}

	current, err := s.GetForecast(ctx)
	if err != nil {
		return domain.Forecast{}, err
	}

	icon := strings.TrimSpace(req.Icon)
	if icon == "" {
		icon = current.Days[day].Icon
	}

	if err := s.storage.Forecasts().SetDay(ctx, day, icon, temp); err != nil {
		if !errors.Is(err, domain.ErrForecastNotFound) {
			return domain.Forecast{}, fmt.Errorf("failed to update %s: %w", day, err)
		}
		// Empty cache: seed it with the current view, then apply the change.
		current.Days[day] = domain.DailyForecast{Day: day, Icon: icon, Temperature: temp}
		if err := s.storage.Forecasts().Save(ctx, &current); err != nil {
			return domain.Forecast{}, fmt.Errorf("failed to save forecast: %w", err)
		}
	}

	logger.Info("forecast row updated", "day", day.Name())
	return s.GetForecast(ctx)
}

// ResetForecast restores the built-in forecast in the cache.
func (s *ForecastService) ResetForecast(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	f := domain.DefaultForecast()
	if err := s.storage.Forecasts().Save(ctx, &f); err != nil {
		return fmt.Errorf("failed to reset forecast: %w", err)
	}
	return nil
}

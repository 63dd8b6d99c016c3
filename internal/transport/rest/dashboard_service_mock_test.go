package rest

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/dashboard"
	"sync"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	StatsFunc    func(ctx context.Context) (*domain.DashboardStats, error)
	SettingsFunc func(ctx context.Context) (dashboard.Settings, error)

	calls struct {
		Stats []struct {
			Ctx context.Context
		}
		Settings []struct {
			Ctx context.Context
		}
	}
	lockStats    sync.RWMutex
	lockSettings sync.RWMutex
}

func (mock *dashboardServiceMock) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if mock.StatsFunc == nil {
		panic("dashboardServiceMock.StatsFunc: method is nil but dashboardService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *dashboardServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) Settings(ctx context.Context) (dashboard.Settings, error) {
	if mock.SettingsFunc == nil {
		panic("dashboardServiceMock.SettingsFunc: method is nil but dashboardService.Settings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSettings.Lock()
	mock.calls.Settings = append(mock.calls.Settings, callInfo)
	mock.lockSettings.Unlock()
	return mock.SettingsFunc(ctx)
}

func (mock *dashboardServiceMock) SettingsCalls() []struct {
	Ctx context.Context
} {
	mock.lockSettings.RLock()
	calls := mock.calls.Settings
	mock.lockSettings.RUnlock()
	return calls
}

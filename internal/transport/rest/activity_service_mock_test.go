package rest

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/activity"
	"sync"
)

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	RecentFunc    func(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
	SubscribeFunc func(ctx context.Context) ([]domain.ActivityEntry, *activity.Subscriber, error)

	calls struct {
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
		Subscribe []struct {
			Ctx context.Context
		}
	}
	lockRecent    sync.RWMutex
	lockSubscribe sync.RWMutex
}

func (mock *activityServiceMock) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if mock.RecentFunc == nil {
		panic("activityServiceMock.RecentFunc: method is nil but activityService.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, limit)
}

func (mock *activityServiceMock) RecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}

func (mock *activityServiceMock) Subscribe(ctx context.Context) ([]domain.ActivityEntry, *activity.Subscriber, error) {
	if mock.SubscribeFunc == nil {
		panic("activityServiceMock.SubscribeFunc: method is nil but activityService.Subscribe was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(ctx)
}

func (mock *activityServiceMock) SubscribeCalls() []struct {
	Ctx context.Context
} {
	mock.lockSubscribe.RLock()
	calls := mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}

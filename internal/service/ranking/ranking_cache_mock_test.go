package ranking

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"sync"
)

var _ rankingCache = &rankingCacheMock{}

type rankingCacheMock struct {
	GetFunc        func(ctx context.Context, limit int) ([]domain.RankingEntry, bool, error)
	SetFunc        func(ctx context.Context, limit int, entries []domain.RankingEntry) error
	InvalidateFunc func(ctx context.Context) error

	calls struct {
		Get []struct {
			Ctx   context.Context
			Limit int
		}
		Set []struct {
			Ctx     context.Context
			Limit   int
			Entries []domain.RankingEntry
		}
		Invalidate []struct {
			Ctx context.Context
		}
	}
	lockGet        sync.RWMutex
	lockSet        sync.RWMutex
	lockInvalidate sync.RWMutex
}

func (mock *rankingCacheMock) Get(ctx context.Context, limit int) ([]domain.RankingEntry, bool, error) {
	if mock.GetFunc == nil {
		panic("rankingCacheMock.GetFunc: method is nil but rankingCache.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, limit)
}

func (mock *rankingCacheMock) GetCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *rankingCacheMock) Set(ctx context.Context, limit int, entries []domain.RankingEntry) error {
	if mock.SetFunc == nil {
		panic("rankingCacheMock.SetFunc: method is nil but rankingCache.Set was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Limit   int
		Entries []domain.RankingEntry
	}{Ctx: ctx, Limit: limit, Entries: entries}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, limit, entries)
}

func (mock *rankingCacheMock) SetCalls() []struct {
	Ctx     context.Context
	Limit   int
	Entries []domain.RankingEntry
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *rankingCacheMock) Invalidate(ctx context.Context) error {
	if mock.InvalidateFunc == nil {
		panic("rankingCacheMock.InvalidateFunc: method is nil but rankingCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx)
}

func (mock *rankingCacheMock) InvalidateCalls() []struct {
	Ctx context.Context
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}

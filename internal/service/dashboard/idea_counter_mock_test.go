package dashboard

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"sync"
)

var _ ideaCounter = &ideaCounterMock{}

type ideaCounterMock struct {
	CountByStatusFunc   func(ctx context.Context) (map[domain.IdeaStatus]int, error)
	CountByCategoryFunc func(ctx context.Context) (map[domain.Category]int, error)

	calls struct {
		CountByStatus []struct {
			Ctx context.Context
		}
		CountByCategory []struct {
			Ctx context.Context
		}
	}
	lockCountByStatus   sync.RWMutex
	lockCountByCategory sync.RWMutex
}

func (mock *ideaCounterMock) CountByStatus(ctx context.Context) (map[domain.IdeaStatus]int, error) {
	if mock.CountByStatusFunc == nil {
		panic("ideaCounterMock.CountByStatusFunc: method is nil but ideaCounter.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx)
}

func (mock *ideaCounterMock) CountByStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *ideaCounterMock) CountByCategory(ctx context.Context) (map[domain.Category]int, error) {
	if mock.CountByCategoryFunc == nil {
		panic("ideaCounterMock.CountByCategoryFunc: method is nil but ideaCounter.CountByCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByCategory.Lock()
	mock.calls.CountByCategory = append(mock.calls.CountByCategory, callInfo)
	mock.lockCountByCategory.Unlock()
	return mock.CountByCategoryFunc(ctx)
}

func (mock *ideaCounterMock) CountByCategoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByCategory.RLock()
	calls := mock.calls.CountByCategory
	mock.lockCountByCategory.RUnlock()
	return calls
}

package ranking

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ pointsRepo = &pointsRepoMock{}

type pointsRepoMock struct {
	TopFunc func(ctx context.Context, limit int) ([]domain.RankingEntry, error)
	GetFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserPoints, error)

	calls struct {
		Top []struct {
			Ctx   context.Context
			Limit int
		}
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockTop sync.RWMutex
	lockGet sync.RWMutex
}

func (mock *pointsRepoMock) Top(ctx context.Context, limit int) ([]domain.RankingEntry, error) {
	if mock.TopFunc == nil {
		panic("pointsRepoMock.TopFunc: method is nil but pointsRepo.Top was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockTop.Lock()
	mock.calls.Top = append(mock.calls.Top, callInfo)
	mock.lockTop.Unlock()
	return mock.TopFunc(ctx, limit)
}

func (mock *pointsRepoMock) TopCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockTop.RLock()
	calls := mock.calls.Top
	mock.lockTop.RUnlock()
	return calls
}

func (mock *pointsRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.UserPoints, error) {
	if mock.GetFunc == nil {
		panic("pointsRepoMock.GetFunc: method is nil but pointsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *pointsRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

package idea

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ pointsRepo = &pointsRepoMock{}

type pointsRepoMock struct {
	ApplyFunc func(ctx context.Context, userID uuid.UUID, d domain.PointsDelta) error

	calls struct {
		Apply []struct {
			Ctx    context.Context
			UserID uuid.UUID
			D      domain.PointsDelta
		}
	}
	lockApply sync.RWMutex
}

func (mock *pointsRepoMock) Apply(ctx context.Context, userID uuid.UUID, d domain.PointsDelta) error {
	if mock.ApplyFunc == nil {
		panic("pointsRepoMock.ApplyFunc: method is nil but pointsRepo.Apply was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		D      domain.PointsDelta
	}{Ctx: ctx, UserID: userID, D: d}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, userID, d)
}

func (mock *pointsRepoMock) ApplyCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	D      domain.PointsDelta
} {
	mock.lockApply.RLock()
	calls := mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}

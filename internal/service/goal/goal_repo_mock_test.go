package goal

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ goalRepo = &goalRepoMock{}

type goalRepoMock struct {
	ListFunc          func(ctx context.Context) ([]domain.Goal, error)
	CreateFunc        func(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	UpdateFunc        func(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	CountApprovedFunc func(ctx context.Context, category *domain.Category, deadline *time.Time) (int, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			G   *domain.Goal
		}
		Update []struct {
			Ctx context.Context
			G   *domain.Goal
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CountApproved []struct {
			Ctx      context.Context
			Category *domain.Category
			Deadline *time.Time
		}
	}
	lockList          sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockCountApproved sync.RWMutex
}

func (mock *goalRepoMock) List(ctx context.Context) ([]domain.Goal, error) {
	if mock.ListFunc == nil {
		panic("goalRepoMock.ListFunc: method is nil but goalRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *goalRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *goalRepoMock) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if mock.CreateFunc == nil {
		panic("goalRepoMock.CreateFunc: method is nil but goalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Goal
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *goalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.Goal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *goalRepoMock) Update(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if mock.UpdateFunc == nil {
		panic("goalRepoMock.UpdateFunc: method is nil but goalRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Goal
	}{Ctx: ctx, G: g}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, g)
}

func (mock *goalRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	G   *domain.Goal
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *goalRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("goalRepoMock.DeleteFunc: method is nil but goalRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *goalRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *goalRepoMock) CountApproved(ctx context.Context, category *domain.Category, deadline *time.Time) (int, error) {
	if mock.CountApprovedFunc == nil {
		panic("goalRepoMock.CountApprovedFunc: method is nil but goalRepo.CountApproved was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category *domain.Category
		Deadline *time.Time
	}{Ctx: ctx, Category: category, Deadline: deadline}
	mock.lockCountApproved.Lock()
	mock.calls.CountApproved = append(mock.calls.CountApproved, callInfo)
	mock.lockCountApproved.Unlock()
	return mock.CountApprovedFunc(ctx, category, deadline)
}

func (mock *goalRepoMock) CountApprovedCalls() []struct {
	Ctx      context.Context
	Category *domain.Category
	Deadline *time.Time
} {
	mock.lockCountApproved.RLock()
	calls := mock.calls.CountApproved
	mock.lockCountApproved.RUnlock()
	return calls
}

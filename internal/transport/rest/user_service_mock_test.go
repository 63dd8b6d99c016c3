package rest

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/user"
	"github.com/google/uuid"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.UserWithPoints, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFunc func(ctx context.Context, input user.CreateInput) (*domain.User, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input user.UpdateInput) (*domain.User, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input user.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input user.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *userServiceMock) List(ctx context.Context) ([]domain.UserWithPoints, error) {
	if mock.ListFunc == nil {
		panic("userServiceMock.ListFunc: method is nil but userService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetFunc == nil {
		panic("userServiceMock.GetFunc: method is nil but userService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *userServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *userServiceMock) Create(ctx context.Context, input user.CreateInput) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userServiceMock.CreateFunc: method is nil but userService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *userServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input user.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userServiceMock) Update(ctx context.Context, id uuid.UUID, input user.UpdateInput) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userServiceMock.UpdateFunc: method is nil but userService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input user.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *userServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input user.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userServiceMock.DeleteFunc: method is nil but userService.Delete was just called")
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

func (mock *userServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

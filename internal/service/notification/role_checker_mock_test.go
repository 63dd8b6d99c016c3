package notification

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ roleChecker = &roleCheckerMock{}

type roleCheckerMock struct {
	HasRoleFunc func(ctx context.Context, id uuid.UUID, role domain.UserRole) (bool, error)

	calls struct {
		HasRole []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Role domain.UserRole
		}
	}
	lockHasRole sync.RWMutex
}

func (mock *roleCheckerMock) HasRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (bool, error) {
	if mock.HasRoleFunc == nil {
		panic("roleCheckerMock.HasRoleFunc: method is nil but roleChecker.HasRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role domain.UserRole
	}{Ctx: ctx, ID: id, Role: role}
	mock.lockHasRole.Lock()
	mock.calls.HasRole = append(mock.calls.HasRole, callInfo)
	mock.lockHasRole.Unlock()
	return mock.HasRoleFunc(ctx, id, role)
}

func (mock *roleCheckerMock) HasRoleCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Role domain.UserRole
} {
	mock.lockHasRole.RLock()
	calls := mock.calls.HasRole
	mock.lockHasRole.RUnlock()
	return calls
}

package auth

import (
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, role string) (string, error)
	TTLFunc                 func() time.Duration

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Role   string
		}
		TTL []struct{}
	}
	lockGenerateAccessToken sync.RWMutex
	lockTTL                 sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   string
	}{UserID: userID, Role: role}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Role   string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) TTL() time.Duration {
	if mock.TTLFunc == nil {
		panic("jwtManagerMock.TTLFunc: method is nil but jwtManager.TTL was just called")
	}
	mock.lockTTL.Lock()
	mock.calls.TTL = append(mock.calls.TTL, struct{}{})
	mock.lockTTL.Unlock()
	return mock.TTLFunc()
}

func (mock *jwtManagerMock) TTLCalls() []struct{} {
	mock.lockTTL.RLock()
	calls := mock.calls.TTL
	mock.lockTTL.RUnlock()
	return calls
}

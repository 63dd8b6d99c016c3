package rest

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/service/notification"
	"sync"
)

var _ statusMailer = &statusMailerMock{}

type statusMailerMock struct {
	SendStatusChangeFunc func(ctx context.Context, in notification.StatusChange) (string, error)

	calls struct {
		SendStatusChange []struct {
			Ctx context.Context
			In  notification.StatusChange
		}
	}
	lockSendStatusChange sync.RWMutex
}

func (mock *statusMailerMock) SendStatusChange(ctx context.Context, in notification.StatusChange) (string, error) {
	if mock.SendStatusChangeFunc == nil {
		panic("statusMailerMock.SendStatusChangeFunc: method is nil but statusMailer.SendStatusChange was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  notification.StatusChange
	}{Ctx: ctx, In: in}
	mock.lockSendStatusChange.Lock()
	mock.calls.SendStatusChange = append(mock.calls.SendStatusChange, callInfo)
	mock.lockSendStatusChange.Unlock()
	return mock.SendStatusChangeFunc(ctx, in)
}

func (mock *statusMailerMock) SendStatusChangeCalls() []struct {
	Ctx context.Context
	In  notification.StatusChange
} {
	mock.lockSendStatusChange.RLock()
	calls := mock.calls.SendStatusChange
	mock.lockSendStatusChange.RUnlock()
	return calls
}

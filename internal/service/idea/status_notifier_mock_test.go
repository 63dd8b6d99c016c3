package idea

import (
	"github.com/ecoideias/ecoideias-backend/internal/service/notification"
	"sync"
)

var _ statusNotifier = &statusNotifierMock{}

type statusNotifierMock struct {
	EnqueueStatusChangeFunc func(in notification.StatusChange)

	calls struct {
		EnqueueStatusChange []struct {
			In notification.StatusChange
		}
	}
	lockEnqueueStatusChange sync.RWMutex
}

func (mock *statusNotifierMock) EnqueueStatusChange(in notification.StatusChange) {
	if mock.EnqueueStatusChangeFunc == nil {
		panic("statusNotifierMock.EnqueueStatusChangeFunc: method is nil but statusNotifier.EnqueueStatusChange was just called")
	}
	callInfo := struct {
		In notification.StatusChange
	}{In: in}
	mock.lockEnqueueStatusChange.Lock()
	mock.calls.EnqueueStatusChange = append(mock.calls.EnqueueStatusChange, callInfo)
	mock.lockEnqueueStatusChange.Unlock()
	mock.EnqueueStatusChangeFunc(in)
}

func (mock *statusNotifierMock) EnqueueStatusChangeCalls() []struct {
	In notification.StatusChange
} {
	mock.lockEnqueueStatusChange.RLock()
	calls := mock.calls.EnqueueStatusChange
	mock.lockEnqueueStatusChange.RUnlock()
	return calls
}

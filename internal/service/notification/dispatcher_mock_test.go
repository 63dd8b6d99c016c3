package notification

import (
	"github.com/ecoideias/ecoideias-backend/internal/adapter/provider/email"
	"sync"
)

var _ dispatcher = &dispatcherMock{}

type dispatcherMock struct {
	EnqueueFunc func(msg email.Message)

	calls struct {
		Enqueue []struct {
			Msg email.Message
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *dispatcherMock) Enqueue(msg email.Message) {
	if mock.EnqueueFunc == nil {
		panic("dispatcherMock.EnqueueFunc: method is nil but dispatcher.Enqueue was just called")
	}
	callInfo := struct {
		Msg email.Message
	}{Msg: msg}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	mock.EnqueueFunc(msg)
}

func (mock *dispatcherMock) EnqueueCalls() []struct {
	Msg email.Message
} {
	mock.lockEnqueue.RLock()
	calls := mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}

package auth

import (
	"sync"
)

var _ resetMailer = &resetMailerMock{}

type resetMailerMock struct {
	EnqueuePasswordResetFunc func(to string, name string, link string)

	calls struct {
		EnqueuePasswordReset []struct {
			To   string
			Name string
			Link string
		}
	}
	lockEnqueuePasswordReset sync.RWMutex
}

func (mock *resetMailerMock) EnqueuePasswordReset(to string, name string, link string) {
	if mock.EnqueuePasswordResetFunc == nil {
		panic("resetMailerMock.EnqueuePasswordResetFunc: method is nil but resetMailer.EnqueuePasswordReset was just called")
	}
	callInfo := struct {
		To   string
		Name string
		Link string
	}{To: to, Name: name, Link: link}
	mock.lockEnqueuePasswordReset.Lock()
	mock.calls.EnqueuePasswordReset = append(mock.calls.EnqueuePasswordReset, callInfo)
	mock.lockEnqueuePasswordReset.Unlock()
	mock.EnqueuePasswordResetFunc(to, name, link)
}

func (mock *resetMailerMock) EnqueuePasswordResetCalls() []struct {
	To   string
	Name string
	Link string
} {
	mock.lockEnqueuePasswordReset.RLock()
	calls := mock.calls.EnqueuePasswordReset
	mock.lockEnqueuePasswordReset.RUnlock()
	return calls
}

package dashboard

import (
	"context"
	"sync"
)

var _ userCounter = &userCounterMock{}

type userCounterMock struct {
	CountFunc func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *userCounterMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userCounterMock.CountFunc: method is nil but userCounter.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userCounterMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

package user

import (
	"context"
	"sync"
)

var _ rankingInvalidator = &rankingInvalidatorMock{}

type rankingInvalidatorMock struct {
	InvalidateFunc func(ctx context.Context)

	calls struct {
		Invalidate []struct {
			Ctx context.Context
		}
	}
	lockInvalidate sync.RWMutex
}

func (mock *rankingInvalidatorMock) Invalidate(ctx context.Context) {
	if mock.InvalidateFunc == nil {
		panic("rankingInvalidatorMock.InvalidateFunc: method is nil but rankingInvalidator.Invalidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	mock.InvalidateFunc(ctx)
}

func (mock *rankingInvalidatorMock) InvalidateCalls() []struct {
	Ctx context.Context
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}

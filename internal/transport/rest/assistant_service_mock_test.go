package rest

import (
	"context"
	"sync"
)

var _ assistantService = &assistantServiceMock{}

type assistantServiceMock struct {
	ReplyFunc func(ctx context.Context, message string) (string, error)

	calls struct {
		Reply []struct {
			Ctx     context.Context
			Message string
		}
	}
	lockReply sync.RWMutex
}

func (mock *assistantServiceMock) Reply(ctx context.Context, message string) (string, error) {
	if mock.ReplyFunc == nil {
		panic("assistantServiceMock.ReplyFunc: method is nil but assistantService.Reply was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Message string
	}{Ctx: ctx, Message: message}
	mock.lockReply.Lock()
	mock.calls.Reply = append(mock.calls.Reply, callInfo)
	mock.lockReply.Unlock()
	return mock.ReplyFunc(ctx, message)
}

func (mock *assistantServiceMock) ReplyCalls() []struct {
	Ctx     context.Context
	Message string
} {
	mock.lockReply.RLock()
	calls := mock.calls.Reply
	mock.lockReply.RUnlock()
	return calls
}

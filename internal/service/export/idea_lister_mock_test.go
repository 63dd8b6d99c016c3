package export

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"sync"
)

var _ ideaLister = &ideaListerMock{}

type ideaListerMock struct {
	ListFunc func(ctx context.Context, f domain.IdeaFilter) ([]domain.IdeaWithAuthor, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.IdeaFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *ideaListerMock) List(ctx context.Context, f domain.IdeaFilter) ([]domain.IdeaWithAuthor, error) {
	if mock.ListFunc == nil {
		panic("ideaListerMock.ListFunc: method is nil but ideaLister.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.IdeaFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *ideaListerMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.IdeaFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

package rest

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/service/analysis"
	"sync"
)

var _ analysisService = &analysisServiceMock{}

type analysisServiceMock struct {
	AnalyzeFunc func(ctx context.Context, in analysis.Input) (*analysis.Result, error)

	calls struct {
		Analyze []struct {
			Ctx context.Context
			In  analysis.Input
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *analysisServiceMock) Analyze(ctx context.Context, in analysis.Input) (*analysis.Result, error) {
	if mock.AnalyzeFunc == nil {
		panic("analysisServiceMock.AnalyzeFunc: method is nil but analysisService.Analyze was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  analysis.Input
	}{Ctx: ctx, In: in}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, in)
}

func (mock *analysisServiceMock) AnalyzeCalls() []struct {
	Ctx context.Context
	In  analysis.Input
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}

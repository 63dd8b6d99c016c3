package rest

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/service/export"
	"sync"
)

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	ExportFunc func(ctx context.Context, req export.Request) (*export.Result, error)

	calls struct {
		Export []struct {
			Ctx context.Context
			Req export.Request
		}
	}
	lockExport sync.RWMutex
}

func (mock *exportServiceMock) Export(ctx context.Context, req export.Request) (*export.Result, error) {
	if mock.ExportFunc == nil {
		panic("exportServiceMock.ExportFunc: method is nil but exportService.Export was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req export.Request
	}{Ctx: ctx, Req: req}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, req)
}

func (mock *exportServiceMock) ExportCalls() []struct {
	Ctx context.Context
	Req export.Request
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}

package idea

import (
	"context"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	CreateFunc          func(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	GetForUpdateFunc    func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	ListFunc            func(ctx context.Context, f domain.IdeaFilter) ([]domain.IdeaWithAuthor, error)
	CountFunc           func(ctx context.Context, f domain.IdeaFilter) (int, error)
	UpdateReviewFunc    func(ctx context.Context, id uuid.UUID, status domain.IdeaStatus, feedback *string, pointsAwarded bool) (*domain.Idea, error)
	MarkImplementedFunc func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			I   *domain.Idea
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.IdeaFilter
		}
		Count []struct {
			Ctx context.Context
			F   domain.IdeaFilter
		}
		UpdateReview []struct {
			Ctx           context.Context
			ID            uuid.UUID
			Status        domain.IdeaStatus
			Feedback      *string
			PointsAwarded bool
		}
		MarkImplemented []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockGetForUpdate    sync.RWMutex
	lockList            sync.RWMutex
	lockCount           sync.RWMutex
	lockUpdateReview    sync.RWMutex
	lockMarkImplemented sync.RWMutex
}

func (mock *ideaRepoMock) Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error) {
	if mock.CreateFunc == nil {
		panic("ideaRepoMock.CreateFunc: method is nil but ideaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		I   *domain.Idea
	}{Ctx: ctx, I: i}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, i)
}

func (mock *ideaRepoMock) CreateCalls() []struct {
	Ctx context.Context
	I   *domain.Idea
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ideaRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but ideaRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *ideaRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *ideaRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if mock.GetForUpdateFunc == nil {
		panic("ideaRepoMock.GetForUpdateFunc: method is nil but ideaRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *ideaRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *ideaRepoMock) List(ctx context.Context, f domain.IdeaFilter) ([]domain.IdeaWithAuthor, error) {
	if mock.ListFunc == nil {
		panic("ideaRepoMock.ListFunc: method is nil but ideaRepo.List was just called")
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

func (mock *ideaRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.IdeaFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *ideaRepoMock) Count(ctx context.Context, f domain.IdeaFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("ideaRepoMock.CountFunc: method is nil but ideaRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.IdeaFilter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *ideaRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.IdeaFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *ideaRepoMock) UpdateReview(ctx context.Context, id uuid.UUID, status domain.IdeaStatus, feedback *string, pointsAwarded bool) (*domain.Idea, error) {
	if mock.UpdateReviewFunc == nil {
		panic("ideaRepoMock.UpdateReviewFunc: method is nil but ideaRepo.UpdateReview was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ID            uuid.UUID
		Status        domain.IdeaStatus
		Feedback      *string
		PointsAwarded bool
	}{Ctx: ctx, ID: id, Status: status, Feedback: feedback, PointsAwarded: pointsAwarded}
	mock.lockUpdateReview.Lock()
	mock.calls.UpdateReview = append(mock.calls.UpdateReview, callInfo)
	mock.lockUpdateReview.Unlock()
	return mock.UpdateReviewFunc(ctx, id, status, feedback, pointsAwarded)
}

func (mock *ideaRepoMock) UpdateReviewCalls() []struct {
	Ctx           context.Context
	ID            uuid.UUID
	Status        domain.IdeaStatus
	Feedback      *string
	PointsAwarded bool
} {
	mock.lockUpdateReview.RLock()
	calls := mock.calls.UpdateReview
	mock.lockUpdateReview.RUnlock()
	return calls
}

func (mock *ideaRepoMock) MarkImplemented(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if mock.MarkImplementedFunc == nil {
		panic("ideaRepoMock.MarkImplementedFunc: method is nil but ideaRepo.MarkImplemented was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkImplemented.Lock()
	mock.calls.MarkImplemented = append(mock.calls.MarkImplemented, callInfo)
	mock.lockMarkImplemented.Unlock()
	return mock.MarkImplementedFunc(ctx, id)
}

func (mock *ideaRepoMock) MarkImplementedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkImplemented.RLock()
	calls := mock.calls.MarkImplemented
	mock.lockMarkImplemented.RUnlock()
	return calls
}

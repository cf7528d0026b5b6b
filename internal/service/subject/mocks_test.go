package subject

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

var _ subjectRepo = &subjectRepoMock{}

type subjectRepoMock struct {
	CreateFunc  func(ctx context.Context, userID uuid.UUID, subject *domain.Subject) (*domain.Subject, error)
	GetByIDFunc func(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
	UpdateFunc  func(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error)
	DeleteFunc  func(ctx context.Context, userID, subjectID uuid.UUID) error
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)
	CountFunc   func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			UserID  uuid.UUID
			Subject *domain.Subject
		}
	}
	mu sync.Mutex
}

func (m *subjectRepoMock) Create(ctx context.Context, userID uuid.UUID, subject *domain.Subject) (*domain.Subject, error) {
	if m.CreateFunc == nil {
		panic("subjectRepoMock.CreateFunc: method is nil but subjectRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct {
		UserID  uuid.UUID
		Subject *domain.Subject
	}{userID, subject})
	m.mu.Unlock()
	return m.CreateFunc(ctx, userID, subject)
}

func (m *subjectRepoMock) GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error) {
	if m.GetByIDFunc == nil {
		panic("subjectRepoMock.GetByIDFunc: method is nil but subjectRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, subjectID)
}

func (m *subjectRepoMock) Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error) {
	if m.UpdateFunc == nil {
		panic("subjectRepoMock.UpdateFunc: method is nil but subjectRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, userID, subjectID, params)
}

func (m *subjectRepoMock) Delete(ctx context.Context, userID, subjectID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("subjectRepoMock.DeleteFunc: method is nil but subjectRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, subjectID)
}

func (m *subjectRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	if m.ListFunc == nil {
		panic("subjectRepoMock.ListFunc: method is nil but subjectRepo.List was just called")
	}
	return m.ListFunc(ctx, userID)
}

func (m *subjectRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountFunc == nil {
		panic("subjectRepoMock.CountFunc: method is nil but subjectRepo.Count was just called")
	}
	return m.CountFunc(ctx, userID)
}

func (m *subjectRepoMock) CreateCalls() []struct {
	UserID  uuid.UUID
	Subject *domain.Subject
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}

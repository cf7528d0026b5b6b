package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc        func(ctx context.Context, userID uuid.UUID, event *domain.Event) (*domain.Event, error)
	GetByIDFunc       func(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error)
	ListBySubjectFunc func(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Event, error)
	UpdateFunc        func(ctx context.Context, userID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	DeleteFunc        func(ctx context.Context, userID, eventID uuid.UUID) error

	calls struct {
		Create []struct {
			UserID uuid.UUID
			Event  *domain.Event
		}
	}
	mu sync.Mutex
}

func (m *eventRepoMock) Create(ctx context.Context, userID uuid.UUID, event *domain.Event) (*domain.Event, error) {
	if m.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct {
		UserID uuid.UUID
		Event  *domain.Event
	}{userID, event})
	m.mu.Unlock()
	return m.CreateFunc(ctx, userID, event)
}

func (m *eventRepoMock) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	if m.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, eventID)
}

func (m *eventRepoMock) ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Event, error) {
	if m.ListBySubjectFunc == nil {
		panic("eventRepoMock.ListBySubjectFunc: method is nil but eventRepo.ListBySubject was just called")
	}
	return m.ListBySubjectFunc(ctx, userID, subjectID)
}

func (m *eventRepoMock) Update(ctx context.Context, userID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	if m.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, userID, eventID, params)
}

func (m *eventRepoMock) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, eventID)
}

func (m *eventRepoMock) CreateCalls() []struct {
	UserID uuid.UUID
	Event  *domain.Event
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

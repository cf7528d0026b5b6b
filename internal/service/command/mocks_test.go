package command

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

var _ subjectRepo = &subjectRepoMock{}

type subjectRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, subject *domain.Subject) (*domain.Subject, error)
	ListFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)
	UpdateFunc func(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error)
	DeleteFunc func(ctx context.Context, userID, subjectID uuid.UUID) error

	calls struct {
		Create []struct {
			UserID  uuid.UUID
			Subject *domain.Subject
		}
		Update []struct {
			SubjectID uuid.UUID
			Params    domain.SubjectUpdateParams
		}
		Delete []struct {
			SubjectID uuid.UUID
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

func (m *subjectRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	if m.ListFunc == nil {
		panic("subjectRepoMock.ListFunc: method is nil but subjectRepo.List was just called")
	}
	return m.ListFunc(ctx, userID)
}

func (m *subjectRepoMock) Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error) {
	if m.UpdateFunc == nil {
		panic("subjectRepoMock.UpdateFunc: method is nil but subjectRepo.Update was just called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, struct {
		SubjectID uuid.UUID
		Params    domain.SubjectUpdateParams
	}{subjectID, params})
	m.mu.Unlock()
	return m.UpdateFunc(ctx, userID, subjectID, params)
}

func (m *subjectRepoMock) Delete(ctx context.Context, userID, subjectID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("subjectRepoMock.DeleteFunc: method is nil but subjectRepo.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, struct {
		SubjectID uuid.UUID
	}{subjectID})
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, subjectID)
}

func (m *subjectRepoMock) CreateCalls() []struct {
	UserID  uuid.UUID
	Subject *domain.Subject
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *subjectRepoMock) DeleteCalls() []struct {
	SubjectID uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, event *domain.Event) (*domain.Event, error)
	GetByIDFunc         func(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error)
	ListBySubjectFunc   func(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Event, error)
	UpdateFunc          func(ctx context.Context, userID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	DeleteFunc          func(ctx context.Context, userID, eventID uuid.UUID) error
	DeleteBySubjectFunc func(ctx context.Context, userID, subjectID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Event *domain.Event
		}
		Update []struct {
			EventID uuid.UUID
			Params  domain.EventUpdateParams
		}
		Delete []struct {
			EventID uuid.UUID
		}
		DeleteBySubject []struct {
			SubjectID uuid.UUID
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
		Event *domain.Event
	}{event})
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
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, struct {
		EventID uuid.UUID
		Params  domain.EventUpdateParams
	}{eventID, params})
	m.mu.Unlock()
	return m.UpdateFunc(ctx, userID, eventID, params)
}

func (m *eventRepoMock) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, struct {
		EventID uuid.UUID
	}{eventID})
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, eventID)
}

func (m *eventRepoMock) DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int, error) {
	if m.DeleteBySubjectFunc == nil {
		panic("eventRepoMock.DeleteBySubjectFunc: method is nil but eventRepo.DeleteBySubject was just called")
	}
	m.mu.Lock()
	m.calls.DeleteBySubject = append(m.calls.DeleteBySubject, struct {
		SubjectID uuid.UUID
	}{subjectID})
	m.mu.Unlock()
	return m.DeleteBySubjectFunc(ctx, userID, subjectID)
}

func (m *eventRepoMock) CreateCalls() []struct {
	Event *domain.Event
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *eventRepoMock) UpdateCalls() []struct {
	EventID uuid.UUID
	Params  domain.EventUpdateParams
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

var _ planner = &plannerMock{}

type plannerMock struct {
	GenerateFunc func(ctx context.Context, req domain.PlanRequest) ([]domain.RawAction, error)

	calls struct {
		Generate []struct {
			Req domain.PlanRequest
		}
	}
	mu sync.Mutex
}

func (m *plannerMock) Generate(ctx context.Context, req domain.PlanRequest) ([]domain.RawAction, error) {
	if m.GenerateFunc == nil {
		panic("plannerMock.GenerateFunc: method is nil but planner.Generate was just called")
	}
	m.mu.Lock()
	m.calls.Generate = append(m.calls.Generate, struct {
		Req domain.PlanRequest
	}{req})
	m.mu.Unlock()
	return m.GenerateFunc(ctx, req)
}

func (m *plannerMock) GenerateCalls() []struct {
	Req domain.PlanRequest
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Generate
}

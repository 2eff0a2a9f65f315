package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/business"
	"github.com/heartmarshall/crm-backend/internal/service/chat"
	"github.com/heartmarshall/crm-backend/internal/service/customer"
	"github.com/heartmarshall/crm-backend/internal/service/lead"
	"github.com/heartmarshall/crm-backend/internal/service/person"
)

var _ personService = &personServiceMock{}

type personServiceMock struct {
	CreateFunc          func(ctx context.Context, input person.CreateInput) (*domain.Person, error)
	UpdateFunc          func(ctx context.Context, input person.UpdateInput) (*domain.Person, error)
	GetFunc             func(ctx context.Context, personID uuid.UUID) (*domain.Person, error)
	ListFunc            func(ctx context.Context, search string, page domain.PageParams) (domain.Page[*domain.Person], error)
	DeleteFunc          func(ctx context.Context, personID uuid.UUID) error
	SetPrimaryFunc      func(ctx context.Context, personID uuid.UUID, kind domain.SubEntityKind, subID uuid.UUID) error
	DeleteSubEntityFunc func(ctx context.Context, personID uuid.UUID, kind domain.SubEntityKind, subID uuid.UUID) error
	HistoryFunc         func(ctx context.Context, personID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input person.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input person.UpdateInput
		}
		Get []struct {
			Ctx      context.Context
			PersonID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Search string
			Page   domain.PageParams
		}
		Delete []struct {
			Ctx      context.Context
			PersonID uuid.UUID
		}
		SetPrimary []struct {
			Ctx      context.Context
			PersonID uuid.UUID
			Kind     domain.SubEntityKind
			SubID    uuid.UUID
		}
		DeleteSubEntity []struct {
			Ctx      context.Context
			PersonID uuid.UUID
			Kind     domain.SubEntityKind
			SubID    uuid.UUID
		}
		History []struct {
			Ctx      context.Context
			PersonID uuid.UUID
			Limit    int
		}
	}
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockGet             sync.RWMutex
	lockList            sync.RWMutex
	lockDelete          sync.RWMutex
	lockSetPrimary      sync.RWMutex
	lockDeleteSubEntity sync.RWMutex
	lockHistory         sync.RWMutex
}

func (mock *personServiceMock) Create(ctx context.Context, input person.CreateInput) (*domain.Person, error) {
	if mock.CreateFunc == nil {
		panic("personServiceMock.CreateFunc: method is nil but personService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input person.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *personServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input person.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *personServiceMock) Update(ctx context.Context, input person.UpdateInput) (*domain.Person, error) {
	if mock.UpdateFunc == nil {
		panic("personServiceMock.UpdateFunc: method is nil but personService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input person.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *personServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input person.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *personServiceMock) Get(ctx context.Context, personID uuid.UUID) (*domain.Person, error) {
	if mock.GetFunc == nil {
		panic("personServiceMock.GetFunc: method is nil but personService.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PersonID uuid.UUID
	}{
		Ctx:      ctx,
		PersonID: personID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, personID)
}

func (mock *personServiceMock) GetCalls() []struct {
	Ctx      context.Context
	PersonID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *personServiceMock) List(ctx context.Context, search string, page domain.PageParams) (domain.Page[*domain.Person], error) {
	if mock.ListFunc == nil {
		panic("personServiceMock.ListFunc: method is nil but personService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Search string
		Page   domain.PageParams
	}{
		Ctx:    ctx,
		Search: search,
		Page:   page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, search, page)
}

func (mock *personServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Search string
	Page   domain.PageParams
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *personServiceMock) Delete(ctx context.Context, personID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("personServiceMock.DeleteFunc: method is nil but personService.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PersonID uuid.UUID
	}{
		Ctx:      ctx,
		PersonID: personID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, personID)
}

func (mock *personServiceMock) DeleteCalls() []struct {
	Ctx      context.Context
	PersonID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *personServiceMock) SetPrimary(ctx context.Context, personID uuid.UUID, kind domain.SubEntityKind, subID uuid.UUID) error {
	if mock.SetPrimaryFunc == nil {
		panic("personServiceMock.SetPrimaryFunc: method is nil but personService.SetPrimary was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PersonID uuid.UUID
		Kind     domain.SubEntityKind
		SubID    uuid.UUID
	}{
		Ctx:      ctx,
		PersonID: personID,
		Kind:     kind,
		SubID:    subID,
	}
	mock.lockSetPrimary.Lock()
	mock.calls.SetPrimary = append(mock.calls.SetPrimary, callInfo)
	mock.lockSetPrimary.Unlock()
	return mock.SetPrimaryFunc(ctx, personID, kind, subID)
}

func (mock *personServiceMock) SetPrimaryCalls() []struct {
	Ctx      context.Context
	PersonID uuid.UUID
	Kind     domain.SubEntityKind
	SubID    uuid.UUID
} {
	mock.lockSetPrimary.RLock()
	calls := mock.calls.SetPrimary
	mock.lockSetPrimary.RUnlock()
	return calls
}

func (mock *personServiceMock) DeleteSubEntity(ctx context.Context, personID uuid.UUID, kind domain.SubEntityKind, subID uuid.UUID) error {
	if mock.DeleteSubEntityFunc == nil {
		panic("personServiceMock.DeleteSubEntityFunc: method is nil but personService.DeleteSubEntity was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PersonID uuid.UUID
		Kind     domain.SubEntityKind
		SubID    uuid.UUID
	}{
		Ctx:      ctx,
		PersonID: personID,
		Kind:     kind,
		SubID:    subID,
	}
	mock.lockDeleteSubEntity.Lock()
	mock.calls.DeleteSubEntity = append(mock.calls.DeleteSubEntity, callInfo)
	mock.lockDeleteSubEntity.Unlock()
	return mock.DeleteSubEntityFunc(ctx, personID, kind, subID)
}

func (mock *personServiceMock) DeleteSubEntityCalls() []struct {
	Ctx      context.Context
	PersonID uuid.UUID
	Kind     domain.SubEntityKind
	SubID    uuid.UUID
} {
	mock.lockDeleteSubEntity.RLock()
	calls := mock.calls.DeleteSubEntity
	mock.lockDeleteSubEntity.RUnlock()
	return calls
}

func (mock *personServiceMock) History(ctx context.Context, personID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("personServiceMock.HistoryFunc: method is nil but personService.History was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PersonID uuid.UUID
		Limit    int
	}{
		Ctx:      ctx,
		PersonID: personID,
		Limit:    limit,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, personID, limit)
}

func (mock *personServiceMock) HistoryCalls() []struct {
	Ctx      context.Context
	PersonID uuid.UUID
	Limit    int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

var _ leadService = &leadServiceMock{}

type leadServiceMock struct {
	CreateFunc  func(ctx context.Context, input lead.CreateInput) (*domain.Lead, error)
	UpdateFunc  func(ctx context.Context, input lead.UpdateInput) (*domain.Lead, error)
	GetFunc     func(ctx context.Context, leadID uuid.UUID) (*domain.Lead, error)
	ListFunc    func(ctx context.Context, filter domain.LeadFilter) (domain.Page[*domain.Lead], error)
	DeleteFunc  func(ctx context.Context, leadID uuid.UUID) error
	ConvertFunc func(ctx context.Context, leadID uuid.UUID) (*domain.Customer, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input lead.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input lead.UpdateInput
		}
		Get []struct {
			Ctx    context.Context
			LeadID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.LeadFilter
		}
		Delete []struct {
			Ctx    context.Context
			LeadID uuid.UUID
		}
		Convert []struct {
			Ctx    context.Context
			LeadID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockGet     sync.RWMutex
	lockList    sync.RWMutex
	lockDelete  sync.RWMutex
	lockConvert sync.RWMutex
}

func (mock *leadServiceMock) Create(ctx context.Context, input lead.CreateInput) (*domain.Lead, error) {
	if mock.CreateFunc == nil {
		panic("leadServiceMock.CreateFunc: method is nil but leadService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lead.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *leadServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input lead.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *leadServiceMock) Update(ctx context.Context, input lead.UpdateInput) (*domain.Lead, error) {
	if mock.UpdateFunc == nil {
		panic("leadServiceMock.UpdateFunc: method is nil but leadService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lead.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *leadServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input lead.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *leadServiceMock) Get(ctx context.Context, leadID uuid.UUID) (*domain.Lead, error) {
	if mock.GetFunc == nil {
		panic("leadServiceMock.GetFunc: method is nil but leadService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LeadID uuid.UUID
	}{
		Ctx:    ctx,
		LeadID: leadID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, leadID)
}

func (mock *leadServiceMock) GetCalls() []struct {
	Ctx    context.Context
	LeadID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *leadServiceMock) List(ctx context.Context, filter domain.LeadFilter) (domain.Page[*domain.Lead], error) {
	if mock.ListFunc == nil {
		panic("leadServiceMock.ListFunc: method is nil but leadService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.LeadFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *leadServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.LeadFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *leadServiceMock) Delete(ctx context.Context, leadID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("leadServiceMock.DeleteFunc: method is nil but leadService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LeadID uuid.UUID
	}{
		Ctx:    ctx,
		LeadID: leadID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, leadID)
}

func (mock *leadServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	LeadID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *leadServiceMock) Convert(ctx context.Context, leadID uuid.UUID) (*domain.Customer, error) {
	if mock.ConvertFunc == nil {
		panic("leadServiceMock.ConvertFunc: method is nil but leadService.Convert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LeadID uuid.UUID
	}{
		Ctx:    ctx,
		LeadID: leadID,
	}
	mock.lockConvert.Lock()
	mock.calls.Convert = append(mock.calls.Convert, callInfo)
	mock.lockConvert.Unlock()
	return mock.ConvertFunc(ctx, leadID)
}

func (mock *leadServiceMock) ConvertCalls() []struct {
	Ctx    context.Context
	LeadID uuid.UUID
} {
	mock.lockConvert.RLock()
	calls := mock.calls.Convert
	mock.lockConvert.RUnlock()
	return calls
}

var _ customerService = &customerServiceMock{}

type customerServiceMock struct {
	CreateFunc func(ctx context.Context, input customer.CreateInput) (*domain.Customer, error)
	UpdateFunc func(ctx context.Context, input customer.UpdateInput) (*domain.Customer, error)
	GetFunc    func(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	ListFunc   func(ctx context.Context, search string, page domain.PageParams) (domain.Page[*domain.Customer], error)
	DeleteFunc func(ctx context.Context, customerID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input customer.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input customer.UpdateInput
		}
		Get []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Search string
			Page   domain.PageParams
		}
		Delete []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *customerServiceMock) Create(ctx context.Context, input customer.CreateInput) (*domain.Customer, error) {
	if mock.CreateFunc == nil {
		panic("customerServiceMock.CreateFunc: method is nil but customerService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input customer.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *customerServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input customer.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *customerServiceMock) Update(ctx context.Context, input customer.UpdateInput) (*domain.Customer, error) {
	if mock.UpdateFunc == nil {
		panic("customerServiceMock.UpdateFunc: method is nil but customerService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input customer.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *customerServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input customer.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *customerServiceMock) Get(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	if mock.GetFunc == nil {
		panic("customerServiceMock.GetFunc: method is nil but customerService.Get was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{
		Ctx:        ctx,
		CustomerID: customerID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, customerID)
}

func (mock *customerServiceMock) GetCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *customerServiceMock) List(ctx context.Context, search string, page domain.PageParams) (domain.Page[*domain.Customer], error) {
	if mock.ListFunc == nil {
		panic("customerServiceMock.ListFunc: method is nil but customerService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Search string
		Page   domain.PageParams
	}{
		Ctx:    ctx,
		Search: search,
		Page:   page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, search, page)
}

func (mock *customerServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Search string
	Page   domain.PageParams
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *customerServiceMock) Delete(ctx context.Context, customerID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("customerServiceMock.DeleteFunc: method is nil but customerService.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{
		Ctx:        ctx,
		CustomerID: customerID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, customerID)
}

func (mock *customerServiceMock) DeleteCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ businessService = &businessServiceMock{}

type businessServiceMock struct {
	CreateFunc       func(ctx context.Context, input business.CreateInput) (*domain.Business, error)
	GetFunc          func(ctx context.Context) (*domain.Business, error)
	UpdateMasterFunc func(ctx context.Context, input person.UpdateInput) (*domain.Business, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input business.CreateInput
		}
		Get []struct {
			Ctx context.Context
		}
		UpdateMaster []struct {
			Ctx   context.Context
			Input person.UpdateInput
		}
	}
	lockCreate       sync.RWMutex
	lockGet          sync.RWMutex
	lockUpdateMaster sync.RWMutex
}

func (mock *businessServiceMock) Create(ctx context.Context, input business.CreateInput) (*domain.Business, error) {
	if mock.CreateFunc == nil {
		panic("businessServiceMock.CreateFunc: method is nil but businessService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input business.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *businessServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input business.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *businessServiceMock) Get(ctx context.Context) (*domain.Business, error) {
	if mock.GetFunc == nil {
		panic("businessServiceMock.GetFunc: method is nil but businessService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *businessServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *businessServiceMock) UpdateMaster(ctx context.Context, input person.UpdateInput) (*domain.Business, error) {
	if mock.UpdateMasterFunc == nil {
		panic("businessServiceMock.UpdateMasterFunc: method is nil but businessService.UpdateMaster was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input person.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateMaster.Lock()
	mock.calls.UpdateMaster = append(mock.calls.UpdateMaster, callInfo)
	mock.lockUpdateMaster.Unlock()
	return mock.UpdateMasterFunc(ctx, input)
}

func (mock *businessServiceMock) UpdateMasterCalls() []struct {
	Ctx   context.Context
	Input person.UpdateInput
} {
	mock.lockUpdateMaster.RLock()
	calls := mock.calls.UpdateMaster
	mock.lockUpdateMaster.RUnlock()
	return calls
}

var _ chatPublisher = &chatPublisherMock{}

type chatPublisherMock struct {
	PublishFunc func(ctx context.Context, chatID uuid.UUID, input chat.PublishInput) (domain.ChatEvent, error)

	calls struct {
		Publish []struct {
			Ctx    context.Context
			ChatID uuid.UUID
			Input  chat.PublishInput
		}
	}
	lockPublish sync.RWMutex
}

func (mock *chatPublisherMock) Publish(ctx context.Context, chatID uuid.UUID, input chat.PublishInput) (domain.ChatEvent, error) {
	if mock.PublishFunc == nil {
		panic("chatPublisherMock.PublishFunc: method is nil but chatPublisher.Publish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID uuid.UUID
		Input  chat.PublishInput
	}{
		Ctx:    ctx,
		ChatID: chatID,
		Input:  input,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, chatID, input)
}

func (mock *chatPublisherMock) PublishCalls() []struct {
	Ctx    context.Context
	ChatID uuid.UUID
	Input  chat.PublishInput
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}


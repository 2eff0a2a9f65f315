package lead

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/person"
)

var _ leadRepo = &leadRepoMock{}

type leadRepoMock struct {
	CreateFunc        func(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	GetByIDFunc       func(ctx context.Context, businessID uuid.UUID, id uuid.UUID) (*domain.Lead, error)
	ListFunc          func(ctx context.Context, businessID uuid.UUID, filter domain.LeadFilter) (domain.Page[*domain.Lead], error)
	UpdateFunc        func(ctx context.Context, businessID uuid.UUID, id uuid.UUID, params domain.LeadUpdateParams, actor domain.Actor) (*domain.Lead, error)
	MarkConvertedFunc func(ctx context.Context, businessID uuid.UUID, id uuid.UUID, customerID uuid.UUID, actor domain.Actor) (*domain.Lead, error)
	SoftDeleteFunc    func(ctx context.Context, businessID uuid.UUID, id uuid.UUID, actor domain.Actor) error

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.Lead
		}
		GetByID []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Id         uuid.UUID
		}
		List []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Filter     domain.LeadFilter
		}
		Update []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Id         uuid.UUID
			Params     domain.LeadUpdateParams
			Actor      domain.Actor
		}
		MarkConverted []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Id         uuid.UUID
			CustomerID uuid.UUID
			Actor      domain.Actor
		}
		SoftDelete []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Id         uuid.UUID
			Actor      domain.Actor
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockList          sync.RWMutex
	lockUpdate        sync.RWMutex
	lockMarkConverted sync.RWMutex
	lockSoftDelete    sync.RWMutex
}

func (mock *leadRepoMock) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	if mock.CreateFunc == nil {
		panic("leadRepoMock.CreateFunc: method is nil but leadRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Lead
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *leadRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.Lead
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *leadRepoMock) GetByID(ctx context.Context, businessID uuid.UUID, id uuid.UUID) (*domain.Lead, error) {
	if mock.GetByIDFunc == nil {
		panic("leadRepoMock.GetByIDFunc: method is nil but leadRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Id         uuid.UUID
	}{
		Ctx:        ctx,
		BusinessID: businessID,
		Id:         id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, businessID, id)
}

func (mock *leadRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Id         uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *leadRepoMock) List(ctx context.Context, businessID uuid.UUID, filter domain.LeadFilter) (domain.Page[*domain.Lead], error) {
	if mock.ListFunc == nil {
		panic("leadRepoMock.ListFunc: method is nil but leadRepo.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Filter     domain.LeadFilter
	}{
		Ctx:        ctx,
		BusinessID: businessID,
		Filter:     filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, businessID, filter)
}

func (mock *leadRepoMock) ListCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Filter     domain.LeadFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *leadRepoMock) Update(ctx context.Context, businessID uuid.UUID, id uuid.UUID, params domain.LeadUpdateParams, actor domain.Actor) (*domain.Lead, error) {
	if mock.UpdateFunc == nil {
		panic("leadRepoMock.UpdateFunc: method is nil but leadRepo.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Id         uuid.UUID
		Params     domain.LeadUpdateParams
		Actor      domain.Actor
	}{
		Ctx:        ctx,
		BusinessID: businessID,
		Id:         id,
		Params:     params,
		Actor:      actor,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, businessID, id, params, actor)
}

func (mock *leadRepoMock) UpdateCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Id         uuid.UUID
	Params     domain.LeadUpdateParams
	Actor      domain.Actor
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *leadRepoMock) MarkConverted(ctx context.Context, businessID uuid.UUID, id uuid.UUID, customerID uuid.UUID, actor domain.Actor) (*domain.Lead, error) {
	if mock.MarkConvertedFunc == nil {
		panic("leadRepoMock.MarkConvertedFunc: method is nil but leadRepo.MarkConverted was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Id         uuid.UUID
		CustomerID uuid.UUID
		Actor      domain.Actor
	}{
		Ctx:        ctx,
		BusinessID: businessID,
		Id:         id,
		CustomerID: customerID,
		Actor:      actor,
	}
	mock.lockMarkConverted.Lock()
	mock.calls.MarkConverted = append(mock.calls.MarkConverted, callInfo)
	mock.lockMarkConverted.Unlock()
	return mock.MarkConvertedFunc(ctx, businessID, id, customerID, actor)
}

func (mock *leadRepoMock) MarkConvertedCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Id         uuid.UUID
	CustomerID uuid.UUID
	Actor      domain.Actor
} {
	mock.lockMarkConverted.RLock()
	calls := mock.calls.MarkConverted
	mock.lockMarkConverted.RUnlock()
	return calls
}

func (mock *leadRepoMock) SoftDelete(ctx context.Context, businessID uuid.UUID, id uuid.UUID, actor domain.Actor) error {
	if mock.SoftDeleteFunc == nil {
		panic("leadRepoMock.SoftDeleteFunc: method is nil but leadRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Id         uuid.UUID
		Actor      domain.Actor
	}{
		Ctx:        ctx,
		BusinessID: businessID,
		Id:         id,
		Actor:      actor,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, businessID, id, actor)
}

func (mock *leadRepoMock) SoftDeleteCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Id         uuid.UUID
	Actor      domain.Actor
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	CreateFunc func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Customer
		}
	}
	lockCreate sync.RWMutex
}

func (mock *customerRepoMock) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if mock.CreateFunc == nil {
		panic("customerRepoMock.CreateFunc: method is nil but customerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Customer
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *customerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Customer
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ personService = &personServiceMock{}

type personServiceMock struct {
	CreateFunc func(ctx context.Context, input person.CreateInput) (*domain.Person, error)
	UpdateFunc func(ctx context.Context, input person.UpdateInput) (*domain.Person, error)
	GetFunc    func(ctx context.Context, personID uuid.UUID) (*domain.Person, error)
	DeleteFunc func(ctx context.Context, personID uuid.UUID) error

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
		Delete []struct {
			Ctx      context.Context
			PersonID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
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

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}


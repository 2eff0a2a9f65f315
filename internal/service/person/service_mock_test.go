package person

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/primaryflag"
)

var _ personRepo = &personRepoMock{}

type personRepoMock struct {
	CreateFunc     func(ctx context.Context, p *domain.Person) (*domain.Person, error)
	GetByIDFunc    func(ctx context.Context, businessID uuid.UUID, id uuid.UUID) (*domain.Person, error)
	UpdateFunc     func(ctx context.Context, businessID uuid.UUID, id uuid.UUID, params domain.PersonUpdateParams, actor domain.Actor) (*domain.Person, error)
	SoftDeleteFunc func(ctx context.Context, businessID uuid.UUID, id uuid.UUID, actor domain.Actor) error
	ListFunc       func(ctx context.Context, businessID uuid.UUID, search string, page domain.PageParams) (domain.Page[*domain.Person], error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Person
		}
		GetByID []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Id         uuid.UUID
		}
		Update []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Id         uuid.UUID
			Params     domain.PersonUpdateParams
			Actor      domain.Actor
		}
		SoftDelete []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Id         uuid.UUID
			Actor      domain.Actor
		}
		List []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Search     string
			Page       domain.PageParams
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpdate     sync.RWMutex
	lockSoftDelete sync.RWMutex
	lockList       sync.RWMutex
}

func (mock *personRepoMock) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	if mock.CreateFunc == nil {
		panic("personRepoMock.CreateFunc: method is nil but personRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Person
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *personRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Person
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *personRepoMock) GetByID(ctx context.Context, businessID uuid.UUID, id uuid.UUID) (*domain.Person, error) {
	if mock.GetByIDFunc == nil {
		panic("personRepoMock.GetByIDFunc: method is nil but personRepo.GetByID was just called")
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

func (mock *personRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Id         uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *personRepoMock) Update(ctx context.Context, businessID uuid.UUID, id uuid.UUID, params domain.PersonUpdateParams, actor domain.Actor) (*domain.Person, error) {
	if mock.UpdateFunc == nil {
		panic("personRepoMock.UpdateFunc: method is nil but personRepo.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Id         uuid.UUID
		Params     domain.PersonUpdateParams
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

func (mock *personRepoMock) UpdateCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Id         uuid.UUID
	Params     domain.PersonUpdateParams
	Actor      domain.Actor
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *personRepoMock) SoftDelete(ctx context.Context, businessID uuid.UUID, id uuid.UUID, actor domain.Actor) error {
	if mock.SoftDeleteFunc == nil {
		panic("personRepoMock.SoftDeleteFunc: method is nil but personRepo.SoftDelete was just called")
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

func (mock *personRepoMock) SoftDeleteCalls() []struct {
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

func (mock *personRepoMock) List(ctx context.Context, businessID uuid.UUID, search string, page domain.PageParams) (domain.Page[*domain.Person], error) {
	if mock.ListFunc == nil {
		panic("personRepoMock.ListFunc: method is nil but personRepo.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Search     string
		Page       domain.PageParams
	}{
		Ctx:        ctx,
		BusinessID: businessID,
		Search:     search,
		Page:       page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, businessID, search, page)
}

func (mock *personRepoMock) ListCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Search     string
	Page       domain.PageParams
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ subEntityEngine[*domain.Address] = &subEntityEngineMock[*domain.Address]{}
var _ subEntityEngine[*domain.Contact] = &subEntityEngineMock[*domain.Contact]{}
var _ subEntityEngine[*domain.Document] = &subEntityEngineMock[*domain.Document]{}

type subEntityEngineMock[E primaryflag.Entity] struct {
	CreateManyFunc func(ctx context.Context, ownerID uuid.UUID, items []primaryflag.Item[E], actor domain.Actor) ([]E, error)
	UpsertManyFunc func(ctx context.Context, ownerID uuid.UUID, items []primaryflag.Item[E], actor domain.Actor) ([]E, error)
	SetPrimaryFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, actor domain.Actor) (E, error)
	DeleteFunc     func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, actor domain.Actor) error
	DeleteAllFunc  func(ctx context.Context, ownerID uuid.UUID, actor domain.Actor) (int64, error)
	ListFunc       func(ctx context.Context, ownerID uuid.UUID) ([]E, error)

	calls struct {
		CreateMany []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Items   []primaryflag.Item[E]
			Actor   domain.Actor
		}
		UpsertMany []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Items   []primaryflag.Item[E]
			Actor   domain.Actor
		}
		SetPrimary []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
			Actor   domain.Actor
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
			Actor   domain.Actor
		}
		DeleteAll []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Actor   domain.Actor
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCreateMany sync.RWMutex
	lockUpsertMany sync.RWMutex
	lockSetPrimary sync.RWMutex
	lockDelete     sync.RWMutex
	lockDeleteAll  sync.RWMutex
	lockList       sync.RWMutex
}

func (mock *subEntityEngineMock[E]) CreateMany(ctx context.Context, ownerID uuid.UUID, items []primaryflag.Item[E], actor domain.Actor) ([]E, error) {
	if mock.CreateManyFunc == nil {
		panic("subEntityEngineMock.CreateManyFunc: method is nil but subEntityEngine.CreateMany was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Items   []primaryflag.Item[E]
		Actor   domain.Actor
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Items:   items,
		Actor:   actor,
	}
	mock.lockCreateMany.Lock()
	mock.calls.CreateMany = append(mock.calls.CreateMany, callInfo)
	mock.lockCreateMany.Unlock()
	return mock.CreateManyFunc(ctx, ownerID, items, actor)
}

func (mock *subEntityEngineMock[E]) CreateManyCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Items   []primaryflag.Item[E]
	Actor   domain.Actor
} {
	mock.lockCreateMany.RLock()
	calls := mock.calls.CreateMany
	mock.lockCreateMany.RUnlock()
	return calls
}

func (mock *subEntityEngineMock[E]) UpsertMany(ctx context.Context, ownerID uuid.UUID, items []primaryflag.Item[E], actor domain.Actor) ([]E, error) {
	if mock.UpsertManyFunc == nil {
		panic("subEntityEngineMock.UpsertManyFunc: method is nil but subEntityEngine.UpsertMany was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Items   []primaryflag.Item[E]
		Actor   domain.Actor
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Items:   items,
		Actor:   actor,
	}
	mock.lockUpsertMany.Lock()
	mock.calls.UpsertMany = append(mock.calls.UpsertMany, callInfo)
	mock.lockUpsertMany.Unlock()
	return mock.UpsertManyFunc(ctx, ownerID, items, actor)
}

func (mock *subEntityEngineMock[E]) UpsertManyCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Items   []primaryflag.Item[E]
	Actor   domain.Actor
} {
	mock.lockUpsertMany.RLock()
	calls := mock.calls.UpsertMany
	mock.lockUpsertMany.RUnlock()
	return calls
}

func (mock *subEntityEngineMock[E]) SetPrimary(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, actor domain.Actor) (E, error) {
	if mock.SetPrimaryFunc == nil {
		panic("subEntityEngineMock.SetPrimaryFunc: method is nil but subEntityEngine.SetPrimary was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
		Actor   domain.Actor
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Id:      id,
		Actor:   actor,
	}
	mock.lockSetPrimary.Lock()
	mock.calls.SetPrimary = append(mock.calls.SetPrimary, callInfo)
	mock.lockSetPrimary.Unlock()
	return mock.SetPrimaryFunc(ctx, ownerID, id, actor)
}

func (mock *subEntityEngineMock[E]) SetPrimaryCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
	Actor   domain.Actor
} {
	mock.lockSetPrimary.RLock()
	calls := mock.calls.SetPrimary
	mock.lockSetPrimary.RUnlock()
	return calls
}

func (mock *subEntityEngineMock[E]) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, actor domain.Actor) error {
	if mock.DeleteFunc == nil {
		panic("subEntityEngineMock.DeleteFunc: method is nil but subEntityEngine.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
		Actor   domain.Actor
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Id:      id,
		Actor:   actor,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id, actor)
}

func (mock *subEntityEngineMock[E]) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
	Actor   domain.Actor
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *subEntityEngineMock[E]) DeleteAll(ctx context.Context, ownerID uuid.UUID, actor domain.Actor) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("subEntityEngineMock.DeleteAllFunc: method is nil but subEntityEngine.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Actor   domain.Actor
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Actor:   actor,
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx, ownerID, actor)
}

func (mock *subEntityEngineMock[E]) DeleteAllCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Actor   domain.Actor
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *subEntityEngineMock[E]) List(ctx context.Context, ownerID uuid.UUID) ([]E, error) {
	if mock.ListFunc == nil {
		panic("subEntityEngineMock.ListFunc: method is nil but subEntityEngine.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *subEntityEngineMock[E]) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc         func(ctx context.Context, record domain.AuditRecord) error
	GetByEntityFunc func(ctx context.Context, businessID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
		GetByEntity []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Limit      int
		}
	}
	lockLog         sync.RWMutex
	lockGetByEntity sync.RWMutex
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

func (mock *auditLoggerMock) GetByEntity(ctx context.Context, businessID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.GetByEntityFunc == nil {
		panic("auditLoggerMock.GetByEntityFunc: method is nil but auditLogger.GetByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Limit      int
	}{
		Ctx:        ctx,
		BusinessID: businessID,
		EntityType: entityType,
		EntityID:   entityID,
		Limit:      limit,
	}
	mock.lockGetByEntity.Lock()
	mock.calls.GetByEntity = append(mock.calls.GetByEntity, callInfo)
	mock.lockGetByEntity.Unlock()
	return mock.GetByEntityFunc(ctx, businessID, entityType, entityID, limit)
}

func (mock *auditLoggerMock) GetByEntityCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
} {
	mock.lockGetByEntity.RLock()
	calls := mock.calls.GetByEntity
	mock.lockGetByEntity.RUnlock()
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


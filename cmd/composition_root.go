package cmd

import (
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/auth"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Each handler gets its own
// unit of work factory so transactions never leak between requests.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryPersonUoWFactory() commands.DeliveryPersonUoWFactory {
	return FuncDeliveryPersonUoWFactory(func() commands.DeliveryPersonUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryPersonCommandHandler() commands.CreateDeliveryPersonCommandHandler {
	return commands.NewCreateDeliveryPersonCommandHandler(c.deliveryPersonUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryPersonCommandHandler() commands.UpdateDeliveryPersonCommandHandler {
	return commands.NewUpdateDeliveryPersonCommandHandler(c.deliveryPersonUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDeliveryPersonCommandHandler() commands.DeleteDeliveryPersonCommandHandler {
	return commands.NewDeleteDeliveryPersonCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	return commands.NewCreateAssignmentCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAssignmentStatusCommandHandler() commands.UpdateAssignmentStatusCommandHandler {
	return commands.NewUpdateAssignmentStatusCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAssignmentCommandHandler() commands.DeleteAssignmentCommandHandler {
	return commands.NewDeleteAssignmentCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersQueryHandler() queries.CountOrdersQueryHandler {
	return queries.NewCountOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveryPersonsQueryHandler() queries.ListDeliveryPersonsQueryHandler {
	return queries.NewListDeliveryPersonsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountDeliveryPersonsQueryHandler() queries.CountDeliveryPersonsQueryHandler {
	return queries.NewCountDeliveryPersonsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAssignmentsQueryHandler() queries.ListAssignmentsQueryHandler {
	return queries.NewListAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentQueryHandler() queries.GetAssignmentQueryHandler {
	return queries.NewGetAssignmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountAssignmentsQueryHandler() queries.CountAssignmentsQueryHandler {
	return queries.NewCountAssignmentsQueryHandler(c.gormDB)
}

// CreateTokenService builds the signer/verifier for operator sessions.
func (c *CompositionRoot) CreateTokenService(config Config) (*auth.TokenService, error) {
	return auth.NewTokenService(config.AuthSecret, config.AuthTokenTTL)
}

// CreateHTTPServer assembles the server from every handler above.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerDeps{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		UpdateOrder:  c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:  c.CreateDeleteOrderCommandHandler(),
		CreatePerson: c.CreateCreateDeliveryPersonCommandHandler(),
		UpdatePerson: c.CreateUpdateDeliveryPersonCommandHandler(),
		DeletePerson: c.CreateDeleteDeliveryPersonCommandHandler(),

		CreateAssignment:       c.CreateCreateAssignmentCommandHandler(),
		UpdateAssignmentStatus: c.CreateUpdateAssignmentStatusCommandHandler(),
		DeleteAssignment:       c.CreateDeleteAssignmentCommandHandler(),

		ListOrders:   c.CreateListOrdersQueryHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		CountOrders:  c.CreateCountOrdersQueryHandler(),
		ListPersons:  c.CreateListDeliveryPersonsQueryHandler(),
		CountPersons: c.CreateCountDeliveryPersonsQueryHandler(),

		ListAssignments:  c.CreateListAssignmentsQueryHandler(),
		GetAssignment:    c.CreateGetAssignmentQueryHandler(),
		CountAssignments: c.CreateCountAssignmentsQueryHandler(),
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryPersonUoWFactory func() commands.DeliveryPersonUoW

func (f FuncDeliveryPersonUoWFactory) Create() commands.DeliveryPersonUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

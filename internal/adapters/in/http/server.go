package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases. Every
// mutation goes through a command handler, every read through a query
// handler; the server itself holds no business rules.
type Server struct {
	createOrder commands.CreateOrderCommandHandler
	updateOrder commands.UpdateOrderCommandHandler
	deleteOrder commands.DeleteOrderCommandHandler

	createPerson commands.CreateDeliveryPersonCommandHandler
	updatePerson commands.UpdateDeliveryPersonCommandHandler
	deletePerson commands.DeleteDeliveryPersonCommandHandler

	createAssignment       commands.CreateAssignmentCommandHandler
	updateAssignmentStatus commands.UpdateAssignmentStatusCommandHandler
	deleteAssignment       commands.DeleteAssignmentCommandHandler

	listOrders   queries.ListOrdersQueryHandler
	getOrder     queries.GetOrderQueryHandler
	countOrders  queries.CountOrdersQueryHandler
	listPersons  queries.ListDeliveryPersonsQueryHandler
	countPersons queries.CountDeliveryPersonsQueryHandler

	listAssignments  queries.ListAssignmentsQueryHandler
	getAssignment    queries.GetAssignmentQueryHandler
	countAssignments queries.CountAssignmentsQueryHandler
}

// ServerDeps carries the use case handlers the server dispatches to.
type ServerDeps struct {
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	CreatePerson commands.CreateDeliveryPersonCommandHandler
	UpdatePerson commands.UpdateDeliveryPersonCommandHandler
	DeletePerson commands.DeleteDeliveryPersonCommandHandler

	CreateAssignment       commands.CreateAssignmentCommandHandler
	UpdateAssignmentStatus commands.UpdateAssignmentStatusCommandHandler
	DeleteAssignment       commands.DeleteAssignmentCommandHandler

	ListOrders   queries.ListOrdersQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	CountOrders  queries.CountOrdersQueryHandler
	ListPersons  queries.ListDeliveryPersonsQueryHandler
	CountPersons queries.CountDeliveryPersonsQueryHandler

	ListAssignments  queries.ListAssignmentsQueryHandler
	GetAssignment    queries.GetAssignmentQueryHandler
	CountAssignments queries.CountAssignmentsQueryHandler
}

// NewServer creates an HTTP server dispatching to the given use case handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		createOrder:            deps.CreateOrder,
		updateOrder:            deps.UpdateOrder,
		deleteOrder:            deps.DeleteOrder,
		createPerson:           deps.CreatePerson,
		updatePerson:           deps.UpdatePerson,
		deletePerson:           deps.DeletePerson,
		createAssignment:       deps.CreateAssignment,
		updateAssignmentStatus: deps.UpdateAssignmentStatus,
		deleteAssignment:       deps.DeleteAssignment,
		listOrders:             deps.ListOrders,
		getOrder:               deps.GetOrder,
		countOrders:            deps.CountOrders,
		listPersons:            deps.ListPersons,
		countPersons:           deps.CountPersons,
		listAssignments:        deps.ListAssignments,
		getAssignment:          deps.GetAssignment,
		countAssignments:       deps.CountAssignments,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.ClientName, req.DeliveryAddress, req.OrderDate.Time,
	)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	created, err := s.createOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	return s.respondOrders(ctx, queries.NewListOrdersQuery())
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	return s.respondOrders(ctx, queries.NewListOrdersQuery().WithStatus(status))
}

// SearchOrders handles GET /api/v1/orders/search?clientName=.
func (s *Server) SearchOrders(ctx echo.Context) error {
	return s.respondOrders(ctx, queries.NewListOrdersQuery().WithClientName(ctx.QueryParam("clientName")))
}

func (s *Server) respondOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.listOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	resp, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// UpdateOrder handles PUT /api/v1/orders/:id. The payload carries the full
// entity; a status differing from the stored one is only accepted when it
// requests cancellation.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	var req OrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, err)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.ClientName, req.DeliveryAddress, req.OrderDate.Time, status)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	updated, err := s.updateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if err = s.deleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CountOrders handles GET /api/v1/orders/count.
func (s *Server) CountOrders(ctx echo.Context) error {
	count, err := s.countOrders.Handle(ctx.Request().Context(), queries.NewCountOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// CreateDeliveryPerson handles POST /api/v1/delivery-persons.
func (s *Server) CreateDeliveryPerson(ctx echo.Context) error {
	var req DeliveryPersonRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryPersonCommand(kernel.NewUUID(), req.Name, req.PhoneNumber)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	created, err := s.createPerson.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, personFromAggregate(created))
}

// GetDeliveryPersons handles GET /api/v1/delivery-persons.
func (s *Server) GetDeliveryPersons(ctx echo.Context) error {
	return s.respondPersons(ctx, queries.NewListDeliveryPersonsQuery())
}

// GetAvailableDeliveryPersons handles GET /api/v1/delivery-persons/available.
func (s *Server) GetAvailableDeliveryPersons(ctx echo.Context) error {
	return s.respondPersons(ctx, queries.NewListDeliveryPersonsQuery().AvailableOnly())
}

func (s *Server) respondPersons(ctx echo.Context, query queries.ListDeliveryPersonsQuery) error {
	persons, err := s.listPersons.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryPerson, len(persons))
	for i, p := range persons {
		response[i] = personFromResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDeliveryPerson handles PUT /api/v1/delivery-persons/:id.
func (s *Server) UpdateDeliveryPerson(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	var req DeliveryPersonRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryPersonCommand(id, req.Name, req.PhoneNumber)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	updated, err := s.updatePerson.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, personFromAggregate(updated))
}

// DeleteDeliveryPerson handles DELETE /api/v1/delivery-persons/:id.
func (s *Server) DeleteDeliveryPerson(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteDeliveryPersonCommand(id)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if err = s.deletePerson.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CountDeliveryPersons handles GET /api/v1/delivery-persons/count.
func (s *Server) CountDeliveryPersons(ctx echo.Context) error {
	count, err := s.countPersons.Handle(ctx.Request().Context(), queries.NewCountDeliveryPersonsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// CreateAssignment handles POST /api/v1/assignments?orderId=&deliveryPersonId=.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.QueryParam("orderId"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	personID, err := kernel.UUIDFromString(ctx.QueryParam("deliveryPersonId"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewCreateAssignmentCommand(orderID, personID)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	created, err := s.createAssignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, assignmentSummaryFromAggregate(created))
}

// GetAssignments handles GET /api/v1/assignments with optional
// deliveryPersonName, status and clientName filters.
func (s *Server) GetAssignments(ctx echo.Context) error {
	query := queries.NewListAssignmentsQuery()

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := assignment.StatusFromString(statusParam)
		if err != nil {
			return writeBadRequest(ctx, err)
		}
		query = query.WithStatus(status)
	}

	if name := ctx.QueryParam("deliveryPersonName"); name != "" {
		query = query.WithDeliveryPersonName(name)
	}

	if clientName := ctx.QueryParam("clientName"); clientName != "" {
		query = query.WithClientName(clientName)
	}

	return s.respondAssignments(ctx, query)
}

// GetAssignmentsByStatus handles GET /api/v1/assignments/status/:status.
func (s *Server) GetAssignmentsByStatus(ctx echo.Context) error {
	status, err := assignment.StatusFromString(ctx.Param("status"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	return s.respondAssignments(ctx, queries.NewListAssignmentsQuery().WithStatus(status))
}

func (s *Server) respondAssignments(ctx echo.Context, query queries.ListAssignmentsQuery) error {
	assignments, err := s.listAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Assignment, len(assignments))
	for i, a := range assignments {
		response[i] = assignmentFromResponse(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignment handles GET /api/v1/assignments/:id.
func (s *Server) GetAssignment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	query, err := queries.NewGetAssignmentQuery(id)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	resp, err := s.getAssignment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentFromResponse(resp))
}

// UpdateAssignmentStatus handles PATCH /api/v1/assignments/:id/status.
func (s *Server) UpdateAssignmentStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	var req AssignmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, err)
	}

	status, err := assignment.StatusFromString(req.Status)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateAssignmentStatusCommand(id, status)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	updated, err := s.updateAssignmentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentSummaryFromAggregate(updated))
}

// DeleteAssignment handles DELETE /api/v1/assignments/:id.
func (s *Server) DeleteAssignment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteAssignmentCommand(id)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if err = s.deleteAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CountAssignments handles GET /api/v1/assignments/count.
func (s *Server) CountAssignments(ctx echo.Context) error {
	count, err := s.countAssignments.Handle(ctx.Request().Context(), queries.NewCountAssignmentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

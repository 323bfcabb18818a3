package console

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"golang.org/x/sync/errgroup"
)

// ReadModel holds the console's view of the coordinator: all orders, couriers
// and assignments at once. The collections are small enough that the console
// refetches everything after any mutation instead of patching locally; a
// failed refresh leaves the previous snapshot in place.
type ReadModel struct {
	client *Client

	mu          sync.RWMutex
	orders      []Order
	persons     []DeliveryPerson
	assignments []Assignment
}

// NewReadModel creates an empty read model backed by the given client.
func NewReadModel(client *Client) *ReadModel {
	return &ReadModel{client: client}
}

// Refresh refetches the three collections in parallel and swaps the snapshot
// wholesale. If any fetch fails nothing is swapped.
func (m *ReadModel) Refresh(ctx context.Context) error {
	var (
		orders      []Order
		persons     []DeliveryPerson
		assignments []Assignment
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		orders, err = m.client.Orders(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		persons, err = m.client.DeliveryPersons(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		assignments, err = m.client.Assignments(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return err
	}

	m.mu.Lock()
	m.orders = orders
	m.persons = persons
	m.assignments = assignments
	m.mu.Unlock()

	return nil
}

// Orders returns the current order snapshot.
func (m *ReadModel) Orders() []Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Order, len(m.orders))
	copy(out, m.orders)
	return out
}

// DeliveryPersons returns the current courier snapshot.
func (m *ReadModel) DeliveryPersons() []DeliveryPerson {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]DeliveryPerson, len(m.persons))
	copy(out, m.persons)
	return out
}

// Assignments returns the current assignment snapshot.
func (m *ReadModel) Assignments() []Assignment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Assignment, len(m.assignments))
	copy(out, m.assignments)
	return out
}

// AssignmentFilter narrows the assignment snapshot. Zero-valued fields do
// not filter. The client name matches as a case-insensitive substring, the
// courier name exactly; this mirrors the server-side filters.
type AssignmentFilter struct {
	DeliveryPersonName string
	Status             string
	ClientNamePart     string
}

// FilterAssignments applies the filter to the current snapshot without
// touching the network.
func (m *ReadModel) FilterAssignments(filter AssignmentFilter) []Assignment {
	clientNamePart := strings.ToLower(filter.ClientNamePart)

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Assignment, 0, len(m.assignments))
	for _, a := range m.assignments {
		if filter.DeliveryPersonName != "" && a.DeliveryPerson.Name != filter.DeliveryPersonName {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if clientNamePart != "" && !strings.Contains(strings.ToLower(a.Order.ClientName), clientNamePart) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// CreateOrder creates an order and refreshes the snapshot.
func (m *ReadModel) CreateOrder(ctx context.Context, req OrderRequest) error {
	if _, err := m.client.CreateOrder(ctx, req); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// UpdateOrder replaces an order and refreshes the snapshot.
func (m *ReadModel) UpdateOrder(ctx context.Context, id uuid.UUID, req OrderRequest) error {
	if _, err := m.client.UpdateOrder(ctx, id, req); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// DeleteOrder deletes an order and refreshes the snapshot.
func (m *ReadModel) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := m.client.DeleteOrder(ctx, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// CreateDeliveryPerson registers a courier and refreshes the snapshot.
func (m *ReadModel) CreateDeliveryPerson(ctx context.Context, req DeliveryPersonRequest) error {
	if _, err := m.client.CreateDeliveryPerson(ctx, req); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// UpdateDeliveryPerson updates a courier and refreshes the snapshot.
func (m *ReadModel) UpdateDeliveryPerson(ctx context.Context, id uuid.UUID, req DeliveryPersonRequest) error {
	if _, err := m.client.UpdateDeliveryPerson(ctx, id, req); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// DeleteDeliveryPerson deletes a courier and refreshes the snapshot.
func (m *ReadModel) DeleteDeliveryPerson(ctx context.Context, id uuid.UUID) error {
	if err := m.client.DeleteDeliveryPerson(ctx, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// CreateAssignment pairs an order with a courier and refreshes the snapshot.
func (m *ReadModel) CreateAssignment(ctx context.Context, orderID, deliveryPersonID uuid.UUID) error {
	if err := m.client.CreateAssignment(ctx, orderID, deliveryPersonID); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// UpdateAssignmentStatus moves an assignment through its lifecycle and
// refreshes the snapshot. Status side effects on the order and the courier
// show up through the refetch.
func (m *ReadModel) UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status string) error {
	if err := m.client.UpdateAssignmentStatus(ctx, id, status); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// DeleteAssignment deletes an assignment and refreshes the snapshot.
func (m *ReadModel) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	if err := m.client.DeleteAssignment(ctx, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

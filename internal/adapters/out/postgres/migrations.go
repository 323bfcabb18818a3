package postgres

import (
	"fmt"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/personrepo"
	"dispatch/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// Migrate creates the schema for all three aggregates and the partial unique
// index that enforces at most one active assignment per order. The index
// backstops the row-lock serialization in the assignment commands: even if a
// future code path skips the locks, Postgres still rejects the second active
// row for the same order.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&personrepo.DeliveryPersonDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	err = db.Exec(fmt.Sprintf(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_active_order
		ON assignments (order_id)
		WHERE status NOT IN ('%s', '%s')
	`, assignment.Delivered, assignment.Cancelled)).Error
	if err != nil {
		return fmt.Errorf("create active assignment index: %w", err)
	}

	return nil
}

package repository

import (
	"context"

	"markethub/internal/domain/entity"
)

// ActivityLogRepository appends to the account audit trail. The log is
// advisory history: there is deliberately no update or delete operation.
type ActivityLogRepository interface {
	// Append writes a single audit row.
	Append(ctx context.Context, log *entity.ActivityLog) error
}

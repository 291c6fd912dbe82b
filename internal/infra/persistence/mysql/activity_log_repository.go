package mysql

import (
	"context"

	"markethub/internal/domain/entity"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// activityLogRepository implements the repository.ActivityLogRepository interface.
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{
		db: db,
	}
}

// Append writes a single audit row.
func (repo *activityLogRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	logM := &model.ActivityLogModel{
		Email:       log.Email,
		Activity:    log.Activity.String(),
		Description: log.Description,
		OccurredAt:  log.OccurredAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity log")
	}

	log.ID = logM.ID

	return nil
}

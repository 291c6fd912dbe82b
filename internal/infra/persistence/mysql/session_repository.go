package mysql

import (
	"context"
	"time"

	"markethub/internal/domain/entity"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create persists a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := &model.SessionModel{
		ID:        session.ID,
		Email:     session.Email,
		TokenHash: session.TokenHash,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

// FindByTokenHash retrieves a non-expired session by its token hash.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND expires_at > ?", tokenHash, time.Now().UTC()).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	return &entity.Session{
		ID:        sessionM.ID,
		Email:     sessionM.Email,
		TokenHash: sessionM.TokenHash,
		ExpiresAt: sessionM.ExpiresAt,
		CreatedAt: sessionM.CreatedAt,
	}, nil
}

// DeleteByTokenHash removes a single session, e.g. on logout.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteByEmail removes every session of an account, e.g. on deactivation.
func (repo *sessionRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sessions by email")
	}

	return nil
}

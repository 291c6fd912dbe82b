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

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		Email:        account.Email,
		Role:         account.Role.String(),
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		PasswordHash: account.PasswordHash,
		Phone:        account.Phone,
		Website:      account.Website,
		BusinessName: account.BusinessName,
		Status:       account.Status.String(),
		CreatedAt:    account.CreatedAt,
		LastLogin:    account.LastLogin,
	}
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		Email:        accountM.Email,
		Role:         entity.Role(accountM.Role),
		FirstName:    accountM.FirstName,
		LastName:     accountM.LastName,
		PasswordHash: accountM.PasswordHash,
		Phone:        accountM.Phone,
		Website:      accountM.Website,
		BusinessName: accountM.BusinessName,
		Status:       entity.Status(accountM.Status),
		CreatedAt:    accountM.CreatedAt,
		LastLogin:    accountM.LastLogin,
	}
}

// FindByEmail retrieves a single account by its case-folded email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt

	return nil
}

// UpdateProfile applies a partial profile update to the account. Only the
// non-nil fields of the update are written.
func (repo *accountRepository) UpdateProfile(ctx context.Context, email string, update *repository.AccountUpdate) error {
	values := map[string]any{}
	if update.FirstName != nil {
		values["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		values["last_name"] = *update.LastName
	}
	if update.Phone != nil {
		values["phone"] = *update.Phone
	}
	if update.Website != nil {
		values["website"] = *update.Website
	}
	if update.BusinessName != nil {
		values["business_name"] = *update.BusinessName
	}
	if update.PasswordHash != nil {
		values["password_hash"] = *update.PasswordHash
	}
	if len(values) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("email = ?", email).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}

	// MySQL reports zero affected rows both for a missing account and for a
	// no-op update, so distinguish via an existence check.
	if result.RowsAffected == 0 {
		return repo.checkExists(ctx, email)
	}

	return nil
}

// UpdateLastLogin stamps the most recent successful login.
func (repo *accountRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("email = ?", email).
		Update("last_login", at).Error; err != nil {
		return errors.Wrap(err, "failed to update last login")
	}

	return nil
}

// SetStatus flips the soft-delete flag of an account.
func (repo *accountRepository) SetStatus(ctx context.Context, email string, status entity.Status) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("email = ?", email).
		Update("status", status.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set account status")
	}

	if result.RowsAffected == 0 {
		return repo.checkExists(ctx, email)
	}

	return nil
}

// CountAll returns the total number of accounts.
func (repo *accountRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return count, nil
}

// CountByStatus returns the number of accounts in the given status.
func (repo *accountRepository) CountByStatus(ctx context.Context, status entity.Status) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accounts by status")
	}

	return count, nil
}

// CountByRole returns per-role account counts for charting.
func (repo *accountRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	var rows []struct {
		Role  string
		Total int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("role, COUNT(*) AS total").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count accounts by role")
	}

	counts := make(map[entity.Role]int64, len(rows))
	for _, row := range rows {
		counts[entity.Role(row.Role)] = row.Total
	}

	return counts, nil
}

// CountRegisteredSince returns the number of accounts of the given role
// created at or after the given time.
func (repo *accountRepository) CountRegisteredSince(ctx context.Context, role entity.Role, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("role = ? AND created_at >= ?", role.String(), since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent registrations")
	}

	return count, nil
}

// ListRecent returns the most recently created accounts, newest first.
func (repo *accountRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

func (repo *accountRepository) checkExists(ctx context.Context, email string) error {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check account existence")
	}
	if count == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

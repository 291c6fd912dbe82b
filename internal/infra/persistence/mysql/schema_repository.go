package mysql

import (
	"context"

	"markethub/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// schemaRepository implements the repository.SchemaRepository interface on
// top of information_schema, scoped to the configured database.
type schemaRepository struct {
	db *gorm.DB
}

// NewSchemaRepository is the constructor for schemaRepository.
func NewSchemaRepository(db *gorm.DB) repository.SchemaRepository {
	return &schemaRepository{
		db: db,
	}
}

// TableNames lists the tables of the configured database.
func (repo *schemaRepository) TableNames(ctx context.Context) ([]string, error) {
	var tables []string

	if err := repo.db.WithContext(ctx).Raw(
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		 ORDER BY table_name`,
	).Scan(&tables).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	return tables, nil
}

// TableColumns describes the columns of one table.
func (repo *schemaRepository) TableColumns(ctx context.Context, table string) ([]repository.ColumnInfo, error) {
	var rows []struct {
		ColumnName    string
		ColumnType    string
		IsNullable    string
		ColumnKey     string
		ColumnDefault *string
	}

	if err := repo.db.WithContext(ctx).Raw(
		`SELECT column_name, column_type, is_nullable, column_key, column_default
		 FROM information_schema.columns
		 WHERE table_schema = DATABASE() AND table_name = ?
		 ORDER BY ordinal_position`,
		table,
	).Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to describe table %s", table)
	}

	columns := make([]repository.ColumnInfo, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, repository.ColumnInfo{
			Name:     row.ColumnName,
			Type:     row.ColumnType,
			Nullable: row.IsNullable == "YES",
			Key:      row.ColumnKey,
			Default:  row.ColumnDefault,
		})
	}

	return columns, nil
}

// RawSelect executes an already-vetted SELECT statement and returns the rows
// as generic maps. The SELECT-prefix guard lives in the application layer.
func (repo *schemaRepository) RawSelect(ctx context.Context, query string) ([]map[string]any, error) {
	results := []map[string]any{}

	if err := repo.db.WithContext(ctx).Raw(query).Scan(&results).Error; err != nil {
		return nil, errors.Wrap(err, "failed to execute raw select")
	}

	return results, nil
}

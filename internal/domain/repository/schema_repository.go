package repository

import "context"

// ColumnInfo describes a single column for the schema info endpoint.
type ColumnInfo struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Nullable bool    `json:"null"`
	Key      string  `json:"key"`
	Default  *string `json:"default"`
}

// SchemaRepository exposes read-only access to database metadata and the
// SELECT-only passthrough used by the assistant endpoints.
type SchemaRepository interface {
	// TableNames lists the tables of the configured database.
	TableNames(ctx context.Context) ([]string, error)

	// TableColumns describes the columns of one table.
	TableColumns(ctx context.Context, table string) ([]ColumnInfo, error)

	// RawSelect executes an already-vetted SELECT statement and returns the
	// rows as generic maps. Callers are responsible for the SELECT-prefix
	// guard; this method performs no further statement analysis.
	RawSelect(ctx context.Context, query string) ([]map[string]any, error)
}

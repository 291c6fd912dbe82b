package mysql

import (
	driver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MySQL server error numbers relevant to constraint handling.
const (
	mysqlErrDuplicateEntry    = 1062
	mysqlErrNoReferencedRow   = 1452
	mysqlErrTableDoesNotExist = 1146
)

func mysqlErrNumber(err error) uint16 {
	var mysqlErr *driver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number
	}

	return 0
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return mysqlErrNumber(err) == mysqlErrDuplicateEntry
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return mysqlErrNumber(err) == mysqlErrNoReferencedRow
}

// isMissingTableError reports whether the statement referenced a table that
// does not exist. The open-orders probe relies on this to fail open when the
// externally-managed order tables are absent.
func isMissingTableError(err error) bool {
	return mysqlErrNumber(err) == mysqlErrTableDoesNotExist
}

package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL error number for unique constraint violations.
const mysqlDuplicateEntry = 1062

// IsDuplicateEntry reports whether err is a unique-index violation surfaced
// by the MySQL driver. The unique indexes are the authoritative guard; the
// services' pre-checks only exist to return a friendlier error first.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

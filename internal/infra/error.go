package infra

import (
	"errors"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	Code string // SQLSTATE, empty when the failure did not come from Postgres
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its Postgres error code unless kind is given.
// The result is marked with errs.ErrDatabaseOperationFailed except for NOT_FOUND.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	code := pgCode(err)

	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	} else {
		switch code {
		case pgErrCodeUniqueViolation:
			k = KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			k = KindForeignKeyViolated
		}
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	repoErr := RepositoryError{Kind: k, Code: code, msg: msg, err: err}
	if k == KindNotFound {
		return repoErr
	}
	return errs.Mark(repoErr, errs.ErrDatabaseOperationFailed)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ErrorCode returns the SQLSTATE carried by err, or "" if none.
func ErrorCode(err error) string {
	var e RepositoryError
	if errs.As(err, &e) && e.Code != "" {
		return e.Code
	}
	return pgCode(err)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

package errs

import "errors"

// Sentinel errors shared by the booking use cases
var (
	// Option errors
	ErrNoValidOptions = errors.New("no valid options selected")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found: " + e.ID
}

func NewNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return As(err, &nf)
}

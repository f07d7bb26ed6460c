package postgres

import (
	goerrors "errors"

	"github.com/lib/pq"

	"github.com/avolkov/storefront-service/internal/domain/errors"
)

// remoteError wraps a driver failure into the structured RemoteError shape
// the workflows decode. Postgres constraint violations become field-level
// errors so they can be reported against the offending column.
func remoteError(op string, err error) *errors.RemoteError {
	remote := errors.NewRemoteError(op, err)

	var pqErr *pq.Error
	if goerrors.As(err, &pqErr) {
		remote.Message = pqErr.Message
		if pqErr.Column != "" {
			remote.FieldErrors = map[string]string{pqErr.Column: pqErr.Message}
		} else if pqErr.Constraint != "" {
			remote.FieldErrors = map[string]string{pqErr.Constraint: pqErr.Message}
		}
	}

	return remote
}

package infra

import (
	"errors"
	"log/slog"

	"hotel-fastbill/internal/pkg/errs"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindStoreFailure  RepositoryErrorKind = "STORE_FAILURE"
	KindDecodeFailure RepositoryErrorKind = "DECODE_FAILURE"
)

// RepositoryError reports a failed read or write of one stored collection.
type RepositoryError struct {
	Kind RepositoryErrorKind
	Key  string
	op   string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	msg := string(e.Kind) + ": failed to " + e.op + " " + e.Key
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Is matches errs.ErrStoreOperationFailed for every kind except NOT_FOUND.
func (e RepositoryError) Is(target error) bool {
	return target == errs.ErrStoreOperationFailed && e.Kind != KindNotFound
}

// WrapRepoErr logs the failure and wraps err for the collection stored under key.
// op names the attempted operation: load, decode, encode or save.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, key, op string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("key", key),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Repository error: failed to "+op, logArgs...)

	if err != nil {
		err = errs.Wrap(err, op+" "+key)
	}

	return RepositoryError{Kind: kind, Key: key, op: op, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

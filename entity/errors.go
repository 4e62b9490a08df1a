package entity

import "errors"

// Sentinel errors shared across the ledger, report and gate services.
// Handlers map these to distinct HTTP statuses; callers must always be able
// to tell "no permission" from "already gone" and "zero" from "failed".
var (
	ErrDuplicateKey       = errors.New("record already exists for this key")
	ErrInvalidWindow      = errors.New("window end must be after window start")
	ErrInvalidKind        = errors.New("unknown referential kind")
	ErrUnauthorized       = errors.New("caller role not allowed")
	ErrNotFound           = errors.New("record not found")
	ErrTimeout            = errors.New("query exceeded its time bound")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

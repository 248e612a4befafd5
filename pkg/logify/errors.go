package logify

import "errors"

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthenticated
	KindForbidden
	KindValidation
	KindNotFound
	KindConflict
	KindTooManyRequests
)

// Error is a business-rule rejection. Anything that is not an *Error is an internal failure.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	ErrUnauthenticated    = newError(KindUnauthenticated, "UNAUTHENTICATED", "authentication required")
	ErrForbidden          = newError(KindForbidden, "FORBIDDEN", "insufficient permissions")
	ErrInvalidCredentials = newError(KindUnauthenticated, "INVALID_CREDENTIALS", "invalid email or password")
	ErrAccountDisabled    = newError(KindForbidden, "ACCOUNT_DISABLED", "account is disabled")

	ErrInvalidID        = newError(KindValidation, "INVALID_ID", "invalid id")
	ErrInvalidBody      = newError(KindValidation, "INVALID_BODY", "malformed request body")
	ErrMissingFields    = newError(KindValidation, "MISSING_FIELDS", "required fields are missing")
	ErrEmptyComment     = newError(KindValidation, "EMPTY_COMMENT", "comment message cannot be empty")
	ErrInvalidStatus    = newError(KindValidation, "INVALID_STATUS", "invalid ticket status")
	ErrInvalidRole      = newError(KindValidation, "INVALID_ROLE", "invalid role")
	ErrOwnRole          = newError(KindValidation, "OWN_ROLE", "you cannot change your own role")
	ErrOwnStatus        = newError(KindValidation, "OWN_STATUS", "you cannot change your own account status")
	ErrInvalidMeterType = newError(KindValidation, "INVALID_METER_TYPE", "invalid meter type")
	ErrInvalidReading   = newError(KindValidation, "INVALID_READING", "reading value must be a non-negative number")
	ErrNoFile           = newError(KindValidation, "NO_FILE", "no image uploaded")
	ErrUnsupportedMedia = newError(KindValidation, "UNSUPPORTED_MEDIA", "only image uploads are accepted")
	ErrFileTooLarge     = newError(KindValidation, "FILE_TOO_LARGE", "image exceeds the upload size limit")

	ErrTicketNotFound = newError(KindNotFound, "NOT_FOUND", "ticket not found")
	ErrUserNotFound   = newError(KindNotFound, "NOT_FOUND", "user not found")
	ErrMeterNotFound  = newError(KindNotFound, "NOT_FOUND", "meter not found")

	ErrEmailExists       = newError(KindConflict, "CONFLICT", "email already registered")
	ErrMeterNumberExists = newError(KindConflict, "CONFLICT", "meter number already registered")
	ErrDuplicateReading  = newError(KindConflict, "DUPLICATE_READING", "a reading has already been recorded today")
	ErrStaleTicket       = newError(KindConflict, "STALE_TICKET", "ticket was modified by someone else, reload and retry")

	ErrRateLimited = newError(KindTooManyRequests, "RATE_LIMITED", "too many requests")
)

// KindOf returns the kind carried by err, KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

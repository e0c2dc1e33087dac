package board

import "errors"

// One sentinel per failure kind. Every check fails fast on first violation
// and the host surfaces the error verbatim as the invocation's terminal
// result; host-level rollback guarantees no partial effects survive.
var (
	ErrMalformedInstruction       = errors.New("malformed instruction")
	ErrNotEnoughAccounts          = errors.New("not enough accounts supplied")
	ErrMissingSignature           = errors.New("missing required signature")
	ErrWrongOwnerProgram          = errors.New("holding account not owned by declared token program")
	ErrMalformedTokenAccount      = errors.New("malformed token account")
	ErrUnauthorizedOrEmptyHolding = errors.New("unauthorized or empty token holding")
	ErrProvisioningFailure        = errors.New("board account provisioning failed")
	ErrSerializationFailure       = errors.New("board record serialization failed")
)

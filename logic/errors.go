package logic

import "errors"

// Resolution and delivery failures for one destination. They are logged and
// the destination is skipped; they never abort fan-out to other targets.
var (
	ErrNoSession          = errors.New("no http session for destination transport")
	ErrWebfingerFailed    = errors.New("webfinger discovery failed")
	ErrWebfingerMalformed = errors.New("webfinger response is not an object")
	ErrNoInbox            = errors.New("actor has no usable inbox")
	ErrNoPublicKey        = errors.New("actor has no usable public key")
	ErrNoActorId          = errors.New("actor document has no id")
	ErrDomainMismatch     = errors.New("resolved inbox url does not contain destination domain")
	ErrSigningKeyMissing  = errors.New("no signing key for sending account")
	ErrActorTimeout       = errors.New("timed out fetching actor document")
)

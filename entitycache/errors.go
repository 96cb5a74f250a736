package entitycache

import "go.trai.ch/zerr"

var (
	// ErrEmptyRegistrationID is returned when a registration has no identifier.
	ErrEmptyRegistrationID = zerr.New("registration id is empty")

	// ErrNilPredicate is returned when a registration has no predicate.
	ErrNilPredicate = zerr.New("registration predicate is nil")

	// ErrNilFactory is returned when a registration has no factory.
	ErrNilFactory = zerr.New("registration factory is nil")

	// ErrDuplicateRegistration is returned when a registration id is already taken.
	ErrDuplicateRegistration = zerr.New("registration id already registered")

	// ErrUnknownMember is returned by Object when no field, key or method has the requested name.
	ErrUnknownMember = zerr.New("unknown member")

	// ErrArgumentCount is returned by Object.Call when the argument count does not match the method.
	ErrArgumentCount = zerr.New("wrong number of arguments")

	// ErrArgumentType is returned by Object.Call when an argument cannot be passed to the method.
	ErrArgumentType = zerr.New("argument type mismatch")
)

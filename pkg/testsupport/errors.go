package testsupport

import "go.trai.ch/zerr"

var (
	// ErrInvalidPropertyValue is returned when a dynamic property is set to a
	// value of an unsupported type.
	ErrInvalidPropertyValue = zerr.New("invalid dynamic property value")

	// ErrEntityRemoved is returned by every state changing call on a removed entity.
	ErrEntityRemoved = zerr.New("entity has been removed")

	// ErrUnknownDimension is returned for dimension ids the world does not have.
	ErrUnknownDimension = zerr.New("unknown dimension")
)

package foreign

//go:generate mockgen -source=entity.go -destination=mocks/mock_entity.go -package=mocks

// Entity is a live entity of the world.
type Entity interface {
	ID() string
	TypeID() string
	AddEffect(effectType string, duration int) error
	Dimension() (Dimension, error)
	Location() (Vector3, error)
	Teleport(location Vector3, opts *TeleportOptions) error
	TryTeleport(location Vector3, opts *TeleportOptions) (bool, error)
	// GetDynamicProperty returns nil when the property is not set.
	GetDynamicProperty(identifier string) (any, error)
	// SetDynamicProperty removes the property when value is nil.
	SetDynamicProperty(identifier string, value any) error
	Remove() error
}

// Player is an entity controlled by a connected client.
type Player interface {
	Entity
	Name() string
	GetGameMode() (GameMode, error)
	SetGameMode(mode GameMode) error
}

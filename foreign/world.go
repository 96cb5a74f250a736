package foreign

// World is the root object of the scripting API.
type World interface {
	// GetEntity returns nil when no entity has the given id.
	GetEntity(id string) (Entity, error)
	GetAllPlayers() ([]Player, error)
	GetDimension(id string) (Dimension, error)
	GetDynamicProperty(identifier string) (any, error)
	SetDynamicProperty(identifier string, value any) error
	AfterEvents() AfterEvents
}

// Signal delivers events of one kind to subscribers. Subscribe returns an
// opaque token identifying the subscription.
type Signal[E any] interface {
	Subscribe(callback func(E)) string
}

// AfterEvents groups the signals fired after the world state changed.
// Callbacks run on a later tick than the change that triggered them.
type AfterEvents interface {
	PlayerDimensionChange() Signal[PlayerDimensionChangeEvent]
	PlayerGameModeChange() Signal[PlayerGameModeChangeEvent]
}

// PlayerDimensionChangeEvent is fired after a player moved to another dimension.
type PlayerDimensionChangeEvent struct {
	Player        Player
	FromDimension Dimension
	FromLocation  Vector3
	ToDimension   Dimension
	ToLocation    Vector3
}

// PlayerGameModeChangeEvent is fired after a player's game mode changed.
type PlayerGameModeChangeEvent struct {
	Player       Player
	FromGameMode GameMode
	ToGameMode   GameMode
}

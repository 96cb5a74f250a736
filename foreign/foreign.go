// Package foreign declares the capabilities of the scripting API that the
// cache layer sits in front of: the world, its entities and players, their
// dimensions and the after-event signals the world emits.
//
// Every accessor may cross into the native runtime and may fail; failures are
// reported as errors and are never retried by the cache layer.
package foreign

// PlayerTypeID is the type tag carried by player entities.
const PlayerTypeID = "minecraft:player"

// Dimension identifiers of the three vanilla dimensions.
const (
	DimensionOverworld = "minecraft:overworld"
	DimensionNether    = "minecraft:nether"
	DimensionTheEnd    = "minecraft:the_end"
)

// Vector3 is a position or direction in world space.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// GameMode is the game mode of a player.
type GameMode string

const (
	GameModeSurvival  GameMode = "survival"
	GameModeCreative  GameMode = "creative"
	GameModeAdventure GameMode = "adventure"
	GameModeSpectator GameMode = "spectator"
)

// Dimension is one of the world's dimensions.
type Dimension interface {
	ID() string
}

// TeleportOptions tune a teleport. A nil Dimension keeps the entity in its
// current dimension.
type TeleportOptions struct {
	Dimension      Dimension
	FacingLocation *Vector3
	KeepVelocity   bool
	CheckForBlocks bool
}

// EffectTarget is implemented by every live entity. The entity and player
// handler families only claim values carrying it, and then tell the two apart
// by type tag.
type EffectTarget interface {
	AddEffect(effectType string, duration int) error
}

// PropertyValue reports whether v is a value a dynamic property can hold:
// bool, float64, string or Vector3. nil means "absent".
func PropertyValue(v any) bool {
	switch v.(type) {
	case nil, bool, float64, string, Vector3:
		return true
	default:
		return false
	}
}

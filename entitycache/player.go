package entitycache

import (
	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/foreign"
)

// PlayerRegistrationID identifies the player handler family.
const PlayerRegistrationID = "player"

// PlayerCache decorates a player. It caches everything EntityCache does plus
// the game mode.
type PlayerCache struct {
	*EntityCache
	player foreign.Player
}

var _ foreign.Player = (*PlayerCache)(nil)

// PlayerRegistration returns the registration of the player family. It
// claims exactly the players the entity family leaves out.
func PlayerRegistration() Registration {
	return Registration{
		ID: PlayerRegistrationID,
		Match: func(v any) bool {
			if _, marked := v.(foreign.EffectTarget); !marked {
				return false
			}
			player, ok := v.(foreign.Player)
			return ok && player.TypeID() == foreign.PlayerTypeID
		},
		New: func(l *Layer, v any) Wrapper {
			player := v.(foreign.Player)
			return &PlayerCache{EntityCache: newEntityCache(l, player), player: player}
		},
		Bind: bindGameModeChange,
	}
}

func (p *PlayerCache) Unwrap() any { return p.player }

func (p *PlayerCache) Name() string { return p.player.Name() }

// GetGameMode returns the cached game mode, reading it from the player on the
// first call.
func (p *PlayerCache) GetGameMode() (foreign.GameMode, error) {
	return cache.GetOrCompute(p.layer.store, BucketGameMode, p.id, p.player.GetGameMode)
}

// SetGameMode writes the game mode to the cache and then to the player.
func (p *PlayerCache) SetGameMode(mode foreign.GameMode) error {
	p.layer.store.Set(BucketGameMode, p.id, mode)
	if err := p.player.SetGameMode(mode); err != nil {
		p.layer.store.Delete(BucketGameMode, p.id)
		return err
	}
	return nil
}

// Remove forwards the removal and forgets everything cached for the player.
func (p *PlayerCache) Remove() error {
	if err := p.EntityCache.Remove(); err != nil {
		return err
	}
	p.layer.store.Delete(BucketGameMode, p.id)
	return nil
}

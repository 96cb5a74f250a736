package testsupport

import (
	"sync"

	"github.com/goliatone/go-cache-layer/foreign"
)

// Entity is a simulated entity. Its dimension, location and dynamic
// properties live in memory and every accessor counts as a native call.
type Entity struct {
	properties

	world  *World
	id     string
	typeID string
	player *Player

	stateMu   sync.Mutex
	dimension *Dimension
	location  foreign.Vector3
	effects   []string
	removed   bool
	blocked   bool
}

var _ foreign.Entity = (*Entity)(nil)

func (e *Entity) ID() string     { return e.id }
func (e *Entity) TypeID() string { return e.typeID }

func (e *Entity) AddEffect(effectType string, duration int) error {
	if err := e.call("addEffect"); err != nil {
		return err
	}
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	if e.removed {
		return ErrEntityRemoved
	}
	e.effects = append(e.effects, effectType)
	return nil
}

// Effects returns the effect types added so far.
func (e *Entity) Effects() []string {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return append([]string(nil), e.effects...)
}

func (e *Entity) Dimension() (foreign.Dimension, error) {
	if err := e.call("dimension"); err != nil {
		return nil, err
	}
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.dimension, nil
}

func (e *Entity) Location() (foreign.Vector3, error) {
	if err := e.call("location"); err != nil {
		return foreign.Vector3{}, err
	}
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.location, nil
}

func (e *Entity) Teleport(location foreign.Vector3, opts *foreign.TeleportOptions) error {
	if err := e.call("teleport"); err != nil {
		return err
	}
	return e.teleport(location, opts)
}

// TryTeleport fails without an error while the destination is blocked, see
// BlockTeleports.
func (e *Entity) TryTeleport(location foreign.Vector3, opts *foreign.TeleportOptions) (bool, error) {
	if err := e.call("tryTeleport"); err != nil {
		return false, err
	}
	e.stateMu.Lock()
	blocked := e.blocked
	e.stateMu.Unlock()
	if blocked {
		return false, nil
	}
	if err := e.teleport(location, opts); err != nil {
		return false, err
	}
	return true, nil
}

// BlockTeleports makes TryTeleport report failure until it is unblocked.
func (e *Entity) BlockTeleports(blocked bool) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	e.blocked = blocked
}

func (e *Entity) teleport(location foreign.Vector3, opts *foreign.TeleportOptions) error {
	target := (*Dimension)(nil)
	if opts != nil && opts.Dimension != nil {
		d, err := e.world.dimension(opts.Dimension.ID())
		if err != nil {
			return err
		}
		target = d
	}

	e.stateMu.Lock()
	removed := e.removed
	e.stateMu.Unlock()
	if removed {
		return ErrEntityRemoved
	}

	e.moveTo(target, &location)
	return nil
}

// moveTo updates the entity's position. A nil dimension keeps the current
// one. Players get a dimension change event when the dimension changes.
func (e *Entity) moveTo(to *Dimension, location *foreign.Vector3) {
	e.stateMu.Lock()
	from, fromLocation := e.dimension, e.location
	if to != nil {
		e.dimension = to
	}
	if location != nil {
		e.location = *location
	}
	toLocation := e.location
	e.stateMu.Unlock()

	if e.player == nil || to == nil || to == from {
		return
	}
	event := foreign.PlayerDimensionChangeEvent{
		Player:        e.player,
		FromDimension: from,
		FromLocation:  fromLocation,
		ToDimension:   to,
		ToLocation:    toLocation,
	}
	e.world.enqueue(func() { e.world.events.dimensionChange.Emit(event) })
}

func (e *Entity) Remove() error {
	if err := e.call("remove"); err != nil {
		return err
	}
	e.stateMu.Lock()
	if e.removed {
		e.stateMu.Unlock()
		return ErrEntityRemoved
	}
	e.removed = true
	e.stateMu.Unlock()

	e.world.remove(e.id)
	return nil
}

// Player is a simulated player.
type Player struct {
	*Entity
	name string

	modeMu   sync.Mutex
	gameMode foreign.GameMode
}

var _ foreign.Player = (*Player)(nil)

func (p *Player) Name() string { return p.name }

func (p *Player) GetGameMode() (foreign.GameMode, error) {
	if err := p.call("getGameMode"); err != nil {
		return "", err
	}
	p.modeMu.Lock()
	defer p.modeMu.Unlock()
	return p.gameMode, nil
}

func (p *Player) SetGameMode(mode foreign.GameMode) error {
	if err := p.call("setGameMode"); err != nil {
		return err
	}
	p.changeGameMode(mode)
	return nil
}

func (p *Player) changeGameMode(mode foreign.GameMode) {
	p.modeMu.Lock()
	from := p.gameMode
	p.gameMode = mode
	p.modeMu.Unlock()

	if from == mode {
		return
	}
	event := foreign.PlayerGameModeChangeEvent{Player: p, FromGameMode: from, ToGameMode: mode}
	p.world.enqueue(func() { p.world.events.gameModeChange.Emit(event) })
}

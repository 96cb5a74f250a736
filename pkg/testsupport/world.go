package testsupport

import (
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/goliatone/go-cache-layer/events"
	"github.com/goliatone/go-cache-layer/foreign"
)

// Dimension is a simulated dimension.
type Dimension struct {
	Native
	id string
}

func (d *Dimension) ID() string { return d.id }

// World is an in-memory stand-in for the scripting API's world. Every native
// object counts its calls, and after-events are delivered on Tick, one tick
// after the change that caused them.
type World struct {
	properties

	dimensions map[string]*Dimension
	events     *AfterEvents

	mu       sync.Mutex
	entities map[string]foreign.Entity
	order    []string
	pending  []func()
}

var _ foreign.World = (*World)(nil)

// NewWorld creates a world with the three vanilla dimensions and no entities.
func NewWorld() *World {
	w := &World{
		dimensions: make(map[string]*Dimension),
		events: &AfterEvents{
			dimensionChange: events.NewSignal[foreign.PlayerDimensionChangeEvent](),
			gameModeChange:  events.NewSignal[foreign.PlayerGameModeChangeEvent](),
		},
		entities: make(map[string]foreign.Entity),
	}
	for _, id := range []string{foreign.DimensionOverworld, foreign.DimensionNether, foreign.DimensionTheEnd} {
		w.dimensions[id] = &Dimension{id: id}
	}
	return w
}

// SpawnEntity adds a non-player entity of the given type to the overworld.
func (w *World) SpawnEntity(typeID string) *Entity {
	e := w.newEntity(uuid.NewString(), typeID)
	w.add(e.id, e)
	return e
}

// SpawnPlayer adds a player in survival mode to the overworld.
func (w *World) SpawnPlayer(name string) *Player {
	p := &Player{name: name, gameMode: foreign.GameModeSurvival}
	p.Entity = w.newEntity(uuid.NewString(), foreign.PlayerTypeID)
	p.Entity.player = p
	w.add(p.id, p)
	return p
}

func (w *World) newEntity(id, typeID string) *Entity {
	return &Entity{world: w, id: id, typeID: typeID, dimension: w.dimensions[foreign.DimensionOverworld]}
}

func (w *World) add(id string, e foreign.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entities[id] = e
	w.order = append(w.order, id)
}

func (w *World) remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.entities, id)
	w.order = slices.DeleteFunc(w.order, func(existing string) bool { return existing == id })
}

// EntityIDs returns the ids of the live entities, players included, in
// spawn order.
func (w *World) EntityIDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.order)
}

func (w *World) GetEntity(id string) (foreign.Entity, error) {
	if err := w.call("getEntity"); err != nil {
		return nil, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entities[id], nil
}

func (w *World) GetAllPlayers() ([]foreign.Player, error) {
	if err := w.call("getAllPlayers"); err != nil {
		return nil, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	var players []foreign.Player
	for _, id := range w.order {
		if p, ok := w.entities[id].(*Player); ok {
			players = append(players, p)
		}
	}
	return players, nil
}

func (w *World) GetDimension(id string) (foreign.Dimension, error) {
	if err := w.call("getDimension"); err != nil {
		return nil, err
	}
	d, err := w.dimension(id)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (w *World) AfterEvents() foreign.AfterEvents {
	return w.events
}

// Events returns the world's signals with their emit side.
func (w *World) Events() *AfterEvents {
	return w.events
}

func (w *World) dimension(id string) (*Dimension, error) {
	d, ok := w.dimensions[id]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrUnknownDimension, "get dimension"), "dimension", id)
	}
	return d, nil
}

func (w *World) enqueue(deliver func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = append(w.pending, deliver)
}

// Tick delivers the after-events queued since the previous tick and returns
// how many were delivered. Events queued by subscribers wait for the next tick.
func (w *World) Tick() int {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	for _, deliver := range pending {
		deliver()
	}
	return len(pending)
}

// TravelThroughPortal moves a player to another dimension without going
// through the scripting API, the way portals do.
func (w *World) TravelThroughPortal(p *Player, dimensionID string) error {
	d, err := w.dimension(dimensionID)
	if err != nil {
		return err
	}
	p.moveTo(d, nil)
	return nil
}

// RunGameModeCommand changes a player's game mode without going through the
// scripting API, the way the /gamemode command does.
func (w *World) RunGameModeCommand(p *Player, mode foreign.GameMode) {
	p.changeGameMode(mode)
}

// NativeCalls sums the calls made into the world, its dimensions and every
// live entity, by method name.
func (w *World) NativeCalls() map[string]int {
	total := w.Counts()
	merge := func(counts map[string]int) {
		for name, n := range counts {
			total[name] += n
		}
	}
	for _, d := range w.dimensions {
		merge(d.Counts())
	}

	w.mu.Lock()
	entities := slices.Collect(maps.Values(w.entities))
	w.mu.Unlock()
	for _, e := range entities {
		if n, ok := e.(interface{ Counts() map[string]int }); ok {
			merge(n.Counts())
		}
	}
	return total
}

// ResetCounters resets the counters of the world, its dimensions and every
// live entity.
func (w *World) ResetCounters() {
	w.Native.ResetCounters()
	for _, d := range w.dimensions {
		d.ResetCounters()
	}

	w.mu.Lock()
	entities := slices.Collect(maps.Values(w.entities))
	w.mu.Unlock()
	for _, e := range entities {
		if n, ok := e.(interface{ ResetCounters() }); ok {
			n.ResetCounters()
		}
	}
}

// AfterEvents holds the world's after-event signals.
type AfterEvents struct {
	dimensionChange *events.Signal[foreign.PlayerDimensionChangeEvent]
	gameModeChange  *events.Signal[foreign.PlayerGameModeChangeEvent]
}

var _ foreign.AfterEvents = (*AfterEvents)(nil)

func (a *AfterEvents) PlayerDimensionChange() foreign.Signal[foreign.PlayerDimensionChangeEvent] {
	return a.dimensionChange
}

func (a *AfterEvents) PlayerGameModeChange() foreign.Signal[foreign.PlayerGameModeChangeEvent] {
	return a.gameModeChange
}

// Subscribers reports the number of subscriptions per signal.
func (a *AfterEvents) Subscribers() map[string]int {
	return map[string]int{
		"playerDimensionChange": a.dimensionChange.Len(),
		"playerGameModeChange":  a.gameModeChange.Len(),
	}
}

package entitycache

import "github.com/goliatone/go-cache-layer/foreign"

// worldProxy forwards every call to the world and wraps what comes back, so
// that entities reached through the world are served by the cache.
type worldProxy struct {
	layer *Layer
	world foreign.World
}

var _ foreign.World = (*worldProxy)(nil)

func (w *worldProxy) IsWrapped() bool { return true }
func (w *worldProxy) Unwrap() any     { return w.world }

func (w *worldProxy) GetEntity(id string) (foreign.Entity, error) {
	entity, err := w.world.GetEntity(id)
	if err != nil || entity == nil {
		return entity, err
	}
	return wrapAs(w.layer, entity), nil
}

func (w *worldProxy) GetAllPlayers() ([]foreign.Player, error) {
	players, err := w.world.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	return wrapAs(w.layer, players), nil
}

func (w *worldProxy) GetDimension(id string) (foreign.Dimension, error) {
	dimension, err := w.world.GetDimension(id)
	if err != nil || dimension == nil {
		return dimension, err
	}
	return wrapAs(w.layer, dimension), nil
}

func (w *worldProxy) GetDynamicProperty(identifier string) (any, error) {
	return w.world.GetDynamicProperty(identifier)
}

func (w *worldProxy) SetDynamicProperty(identifier string, value any) error {
	return w.world.SetDynamicProperty(identifier, value)
}

func (w *worldProxy) AfterEvents() foreign.AfterEvents {
	events := w.world.AfterEvents()
	if events == nil {
		return nil
	}
	return wrapAs(w.layer, events)
}

// afterEventsProxy hands out signals whose subscribers receive wrapped
// event payloads.
type afterEventsProxy struct {
	layer  *Layer
	events foreign.AfterEvents
}

var _ foreign.AfterEvents = (*afterEventsProxy)(nil)

func (a *afterEventsProxy) IsWrapped() bool { return true }
func (a *afterEventsProxy) Unwrap() any     { return a.events }

func (a *afterEventsProxy) PlayerDimensionChange() foreign.Signal[foreign.PlayerDimensionChangeEvent] {
	return &signalProxy[foreign.PlayerDimensionChangeEvent]{
		signal: a.events.PlayerDimensionChange(),
		wrap: func(e foreign.PlayerDimensionChangeEvent) foreign.PlayerDimensionChangeEvent {
			e.Player = wrapAs(a.layer, e.Player)
			e.FromDimension = wrapAs(a.layer, e.FromDimension)
			e.ToDimension = wrapAs(a.layer, e.ToDimension)
			return e
		},
	}
}

func (a *afterEventsProxy) PlayerGameModeChange() foreign.Signal[foreign.PlayerGameModeChangeEvent] {
	return &signalProxy[foreign.PlayerGameModeChangeEvent]{
		signal: a.events.PlayerGameModeChange(),
		wrap: func(e foreign.PlayerGameModeChangeEvent) foreign.PlayerGameModeChangeEvent {
			e.Player = wrapAs(a.layer, e.Player)
			return e
		},
	}
}

type signalProxy[E any] struct {
	signal foreign.Signal[E]
	wrap   func(E) E
}

func (s *signalProxy[E]) IsWrapped() bool { return true }
func (s *signalProxy[E]) Unwrap() any     { return s.signal }

func (s *signalProxy[E]) Subscribe(callback func(E)) string {
	return s.signal.Subscribe(func(e E) {
		callback(s.wrap(e))
	})
}

// dimensionProxy marks a dimension as seen by the layer. Dimensions carry no
// cached state.
type dimensionProxy struct {
	dimension foreign.Dimension
}

var _ foreign.Dimension = (*dimensionProxy)(nil)

func (d *dimensionProxy) IsWrapped() bool { return true }
func (d *dimensionProxy) Unwrap() any     { return d.dimension }

func (d *dimensionProxy) ID() string { return d.dimension.ID() }

// Package simulation drives the same scripted workload against an uncached
// world and a cached one, then reports how many native calls the cache layer
// saved and whether both runs observed the same values.
package simulation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/entitycache"
	"github.com/goliatone/go-cache-layer/foreign"
	"github.com/goliatone/go-cache-layer/pkg/di"
	"github.com/goliatone/go-cache-layer/pkg/testsupport"
)

// ErrInvalidOptions is returned when the workload cannot be run.
var ErrInvalidOptions = zerr.New("invalid simulation options")

const (
	entityType   = "minecraft:zombie"
	propertyName = "visits"
	writeEvery   = 5
)

var (
	portalCycle = []string{foreign.DimensionNether, foreign.DimensionTheEnd, foreign.DimensionOverworld}
	modeCycle   = []foreign.GameMode{foreign.GameModeCreative, foreign.GameModeAdventure, foreign.GameModeSurvival}
)

// Options size the workload.
type Options struct {
	Players  int
	Entities int
	Rounds   int
	// PortalEvery sends one player through a portal every that many rounds.
	// Zero disables travel.
	PortalEvery int
}

// Report is the outcome of a simulation.
type Report struct {
	Backend    cache.Backend  `yaml:"backend"`
	Players    int            `yaml:"players"`
	Entities   int            `yaml:"entities"`
	Rounds     int            `yaml:"rounds"`
	Events     int            `yaml:"events"`
	Native     map[string]int `yaml:"native"`
	Cached     map[string]int `yaml:"cached"`
	Mismatches int            `yaml:"mismatches"`
}

// Saved is the number of native calls the cached run avoided.
func (r Report) Saved() int {
	return total(r.Native) - total(r.Cached)
}

// WriteText renders the report as an aligned table.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "backend\t%s\n", r.Backend)
	fmt.Fprintf(tw, "players\t%d\n", r.Players)
	fmt.Fprintf(tw, "entities\t%d\n", r.Entities)
	fmt.Fprintf(tw, "rounds\t%d\n", r.Rounds)
	fmt.Fprintf(tw, "events\t%d\n", r.Events)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "call\tnative\tcached")

	names := make(map[string]int, len(r.Native))
	maps.Copy(names, r.Native)
	maps.Copy(names, r.Cached)
	for _, name := range slices.Sorted(maps.Keys(names)) {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", name, r.Native[name], r.Cached[name])
	}
	fmt.Fprintf(tw, "total\t%d\t%d\n", total(r.Native), total(r.Cached))
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "saved\t%d\n", r.Saved())
	fmt.Fprintf(tw, "mismatches\t%d\n", r.Mismatches)
	return tw.Flush()
}

// Run executes the workload once against a bare world and once through a
// cache layer built from cfg.
func Run(ctx context.Context, cfg cache.Config, opts Options, logger *slog.Logger) (Report, error) {
	if err := validate(opts); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cachedWorld, cachedPlayers := populate(opts)
	container, err := di.NewContainer(cfg, cachedWorld, entitycache.WithLogger(logger))
	if err != nil {
		return Report{}, zerr.Wrap(err, "build cache layer")
	}
	rawWorld, rawPlayers := populate(opts)

	// The two worlds share nothing, so both runs can proceed side by side.
	var native, cached outcome
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := workload(ctx, rawWorld, rawWorld, rawPlayers, opts, logger)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "uncached run"), "backend", "none")
		}
		native = out
		return nil
	})
	g.Go(func() error {
		out, err := workload(ctx, cachedWorld, container.World(), cachedPlayers, opts, logger)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "cached run"), "backend", string(cfg.Backend))
		}
		cached = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		Backend:    cfg.Backend,
		Players:    opts.Players,
		Entities:   opts.Entities,
		Rounds:     opts.Rounds,
		Events:     cached.events,
		Native:     native.calls,
		Cached:     cached.calls,
		Mismatches: mismatches(native.observed, cached.observed),
	}
	logger.Info("simulation finished",
		"backend", report.Backend,
		"native_calls", total(report.Native),
		"cached_calls", total(report.Cached),
		"mismatches", report.Mismatches)
	return report, nil
}

func validate(opts Options) error {
	if opts.Players < 0 || opts.Entities < 0 || opts.PortalEvery < 0 {
		return zerr.Wrap(ErrInvalidOptions, "counts cannot be negative")
	}
	if opts.Rounds < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidOptions, "rounds must be positive"), "rounds", opts.Rounds)
	}
	return nil
}

// populate spawns the players first and then the entities, so two worlds
// built from the same options list them in the same order.
func populate(opts Options) (*testsupport.World, []*testsupport.Player) {
	world := testsupport.NewWorld()
	players := make([]*testsupport.Player, opts.Players)
	for i := range players {
		players[i] = world.SpawnPlayer(fmt.Sprintf("player-%d", i))
	}
	for range opts.Entities {
		world.SpawnEntity(entityType)
	}
	return world, players
}

type outcome struct {
	calls    map[string]int
	observed []string
	events   int
}

// workload plays opts.Rounds rounds through api. world is the native side of
// api and is used for the changes that bypass the scripting API.
func workload(ctx context.Context, world *testsupport.World, api foreign.World, natives []*testsupport.Player, opts Options, logger *slog.Logger) (outcome, error) {
	players, err := api.GetAllPlayers()
	if err != nil {
		return outcome{}, zerr.Wrap(err, "list players")
	}

	entities := make([]foreign.Entity, 0, opts.Entities)
	for _, id := range world.EntityIDs() {
		entity, err := api.GetEntity(id)
		if err != nil {
			return outcome{}, zerr.With(zerr.Wrap(err, "get entity"), "id", id)
		}
		if entity.TypeID() == entityType {
			entities = append(entities, entity)
		}
	}

	world.ResetCounters()
	var out outcome

	for round := 1; round <= opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return outcome{}, zerr.With(err, "round", round)
		}

		for _, entity := range entities {
			obs, err := visit(entity, round)
			if err != nil {
				return outcome{}, zerr.With(zerr.Wrap(err, "visit entity"), "id", entity.ID())
			}
			out.observed = append(out.observed, obs)
		}

		for _, player := range players {
			obs, err := visit(player, round)
			if err != nil {
				return outcome{}, zerr.With(zerr.Wrap(err, "visit player"), "name", player.Name())
			}
			mode, err := player.GetGameMode()
			if err != nil {
				return outcome{}, zerr.With(zerr.Wrap(err, "read game mode"), "name", player.Name())
			}
			out.observed = append(out.observed, obs+" "+string(mode))
		}

		if opts.PortalEvery > 0 && len(natives) > 0 && round%opts.PortalEvery == 0 {
			step := round / opts.PortalEvery
			traveller := natives[step%len(natives)]
			destination := portalCycle[step%len(portalCycle)]
			if err := world.TravelThroughPortal(traveller, destination); err != nil {
				return outcome{}, zerr.With(zerr.Wrap(err, "travel through portal"), "dimension", destination)
			}
			if step%2 == 0 {
				world.RunGameModeCommand(traveller, modeCycle[step%len(modeCycle)])
			}
			logger.Debug("player moved", "name", traveller.Name(), "dimension", destination, "round", round)
		}
		out.events += world.Tick()
	}

	out.calls = world.NativeCalls()
	return out, nil
}

// visit reads the dimension and the visit counter of e, bumping the counter
// every writeEvery rounds.
func visit(e foreign.Entity, round int) (string, error) {
	dimension, err := e.Dimension()
	if err != nil {
		return "", err
	}
	if round%writeEvery == 0 {
		if err := e.SetDynamicProperty(propertyName, float64(round)); err != nil {
			return "", err
		}
	}
	visits, err := e.GetDynamicProperty(propertyName)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %v", e.ID(), dimension.ID(), visits), nil
}

// mismatches compares observations by position. Entity ids are random per
// world, so only the part after the id is compared.
func mismatches(native, cached []string) int {
	n := max(len(native), len(cached))
	count := 0
	for i := range n {
		if i >= len(native) || i >= len(cached) || strip(native[i]) != strip(cached[i]) {
			count++
		}
	}
	return count
}

func strip(obs string) string {
	_, rest, _ := strings.Cut(obs, " ")
	return rest
}

func total(calls map[string]int) int {
	sum := 0
	for _, n := range calls {
		sum += n
	}
	return sum
}

package testsupport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-cache-layer/foreign"
)

func TestWorld_SpawnAndLookup(t *testing.T) {
	world := NewWorld()
	zombie := world.SpawnEntity("minecraft:zombie")
	steve := world.SpawnPlayer("Steve")

	got, err := world.GetEntity(zombie.ID())
	require.NoError(t, err)
	assert.Same(t, zombie, got)

	missing, err := world.GetEntity("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	players, err := world.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, steve.ID(), players[0].ID())
	assert.Equal(t, foreign.PlayerTypeID, players[0].TypeID())

	assert.Equal(t, 2, world.GetCount("getEntity"))
	assert.Equal(t, 1, world.GetCount("getAllPlayers"))
}

func TestEntity_CountsNativeCalls(t *testing.T) {
	world := NewWorld()
	entity := world.SpawnEntity("minecraft:cow")

	_, _ = entity.Dimension()
	_, _ = entity.Dimension()
	require.NoError(t, entity.SetDynamicProperty("hp", 10.0))
	value, err := entity.GetDynamicProperty("hp")
	require.NoError(t, err)

	assert.Equal(t, 10.0, value)
	assert.Equal(t, 2, entity.GetCount("dimension"))
	assert.Equal(t, 1, entity.GetCount("setDynamicProperty"))
	assert.Equal(t, 1, entity.GetCount("getDynamicProperty"))

	entity.ResetCounters()
	assert.Zero(t, entity.GetCount("dimension"))
}

func TestEntity_DynamicProperties(t *testing.T) {
	entity := NewWorld().SpawnEntity("minecraft:cow")

	require.NoError(t, entity.SetDynamicProperty("pos", foreign.Vector3{X: 1}))
	require.NoError(t, entity.SetDynamicProperty("pos", nil))

	value, err := entity.GetDynamicProperty("pos")
	require.NoError(t, err)
	assert.Nil(t, value)

	err = entity.SetDynamicProperty("bad", 3)
	assert.ErrorIs(t, err, ErrInvalidPropertyValue)
}

func TestEntity_FailNext(t *testing.T) {
	entity := NewWorld().SpawnEntity("minecraft:cow")
	boom := errors.New("boom")

	entity.FailNext("dimension", boom)

	_, err := entity.Dimension()
	assert.ErrorIs(t, err, boom)

	_, err = entity.Dimension()
	assert.NoError(t, err)
	assert.Equal(t, 2, entity.GetCount("dimension"))
}

func TestEntity_TeleportQueuesPlayerEvent(t *testing.T) {
	world := NewWorld()
	steve := world.SpawnPlayer("Steve")
	nether, err := world.GetDimension(foreign.DimensionNether)
	require.NoError(t, err)

	var got []foreign.PlayerDimensionChangeEvent
	world.AfterEvents().PlayerDimensionChange().Subscribe(func(e foreign.PlayerDimensionChangeEvent) {
		got = append(got, e)
	})

	require.NoError(t, steve.Teleport(foreign.Vector3{Y: 64}, &foreign.TeleportOptions{Dimension: nether}))
	assert.Empty(t, got, "events are delivered on the next tick")

	assert.Equal(t, 1, world.Tick())
	require.Len(t, got, 1)
	assert.Equal(t, foreign.DimensionOverworld, got[0].FromDimension.ID())
	assert.Equal(t, foreign.DimensionNether, got[0].ToDimension.ID())
	assert.Equal(t, foreign.Vector3{Y: 64}, got[0].ToLocation)

	dimension, err := steve.Dimension()
	require.NoError(t, err)
	assert.Equal(t, foreign.DimensionNether, dimension.ID())
}

func TestEntity_NonPlayerTeleportHasNoEvent(t *testing.T) {
	world := NewWorld()
	cow := world.SpawnEntity("minecraft:cow")
	end, err := world.GetDimension(foreign.DimensionTheEnd)
	require.NoError(t, err)

	require.NoError(t, cow.Teleport(foreign.Vector3{}, &foreign.TeleportOptions{Dimension: end}))
	assert.Zero(t, world.Tick())
}

func TestEntity_TryTeleportBlocked(t *testing.T) {
	cow := NewWorld().SpawnEntity("minecraft:cow")
	cow.BlockTeleports(true)

	moved, err := cow.TryTeleport(foreign.Vector3{X: 5}, nil)
	require.NoError(t, err)
	assert.False(t, moved)

	location, err := cow.Location()
	require.NoError(t, err)
	assert.Equal(t, foreign.Vector3{}, location)
}

func TestEntity_Remove(t *testing.T) {
	world := NewWorld()
	cow := world.SpawnEntity("minecraft:cow")

	require.NoError(t, cow.Remove())
	assert.ErrorIs(t, cow.Remove(), ErrEntityRemoved)
	assert.ErrorIs(t, cow.AddEffect("speed", 10), ErrEntityRemoved)

	got, err := world.GetEntity(cow.ID())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWorld_UnknownDimension(t *testing.T) {
	_, err := NewWorld().GetDimension("minecraft:moon")
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestWorld_RunGameModeCommand(t *testing.T) {
	world := NewWorld()
	alex := world.SpawnPlayer("Alex")

	var got []foreign.GameMode
	world.AfterEvents().PlayerGameModeChange().Subscribe(func(e foreign.PlayerGameModeChangeEvent) {
		got = append(got, e.ToGameMode)
	})

	world.RunGameModeCommand(alex, foreign.GameModeCreative)
	world.RunGameModeCommand(alex, foreign.GameModeCreative)
	world.Tick()

	assert.Equal(t, []foreign.GameMode{foreign.GameModeCreative}, got)
	assert.Zero(t, alex.GetCount("setGameMode"), "commands bypass the scripting API")
}

func TestWorld_NativeCallsAggregates(t *testing.T) {
	world := NewWorld()
	a := world.SpawnEntity("minecraft:cow")
	b := world.SpawnPlayer("Steve")

	_, _ = a.Dimension()
	_, _ = b.Dimension()
	_, _ = b.GetGameMode()
	_, _ = world.GetAllPlayers()

	calls := world.NativeCalls()
	assert.Equal(t, 2, calls["dimension"])
	assert.Equal(t, 1, calls["getGameMode"])
	assert.Equal(t, 1, calls["getAllPlayers"])

	world.ResetCounters()
	assert.Empty(t, world.NativeCalls())
}

func TestWorld_EntityIDsInSpawnOrder(t *testing.T) {
	world := NewWorld()
	steve := world.SpawnPlayer("Steve")
	zombie := world.SpawnEntity("minecraft:zombie")
	alex := world.SpawnPlayer("Alex")

	assert.Equal(t, []string{steve.ID(), zombie.ID(), alex.ID()}, world.EntityIDs())

	require.NoError(t, zombie.Remove())
	ids := world.EntityIDs()
	assert.Equal(t, []string{steve.ID(), alex.ID()}, ids)

	ids[0] = "changed"
	assert.Equal(t, steve.ID(), world.EntityIDs()[0])
}

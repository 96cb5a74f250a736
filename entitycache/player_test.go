package entitycache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/goliatone/go-cache-layer/foreign"
	"github.com/goliatone/go-cache-layer/foreign/mocks"
	"github.com/goliatone/go-cache-layer/pkg/testsupport"
)

func cachedPlayer(t *testing.T, layer *Layer, world *testsupport.World) foreign.Player {
	t.Helper()
	players, err := layer.WrapWorld(world).GetAllPlayers()
	require.NoError(t, err)
	require.NotEmpty(t, players)
	return players[0]
}

func TestPlayerCache_SetGameMode(t *testing.T) {
	layer := newTestLayer(t)
	world := testsupport.NewWorld()
	native := world.SpawnPlayer("Steve")
	player := cachedPlayer(t, layer, world)
	native.ResetCounters()

	require.NoError(t, player.SetGameMode(foreign.GameModeCreative))

	mode, err := player.GetGameMode()
	require.NoError(t, err)
	assert.Equal(t, foreign.GameModeCreative, mode)
	assert.Equal(t, 1, native.GetCount("setGameMode"))
	assert.Zero(t, native.GetCount("getGameMode"))
}

func TestPlayerCache_GetGameMode(t *testing.T) {
	layer := newTestLayer(t)
	world := testsupport.NewWorld()
	native := world.SpawnPlayer("Steve")
	require.NoError(t, native.SetGameMode(foreign.GameModeCreative))
	player := cachedPlayer(t, layer, world)
	native.ResetCounters()

	for range 3 {
		mode, err := player.GetGameMode()
		require.NoError(t, err)
		assert.Equal(t, foreign.GameModeCreative, mode)
	}
	assert.Equal(t, 1, native.GetCount("getGameMode"))
}

func TestPlayerCache_InheritsEntityCaching(t *testing.T) {
	layer := newTestLayer(t)
	world := testsupport.NewWorld()
	native := world.SpawnPlayer("Steve")
	player := cachedPlayer(t, layer, world)

	require.NoError(t, player.SetDynamicProperty("kills", 3.0))
	kills, err := player.GetDynamicProperty("kills")
	require.NoError(t, err)
	assert.Equal(t, 3.0, kills)

	for range 2 {
		_, err := player.Dimension()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, native.GetCount("dimension"))
	assert.Zero(t, native.GetCount("getDynamicProperty"))
	assert.Equal(t, "Steve", player.Name())
	assert.Same(t, native, Unwrap(player))
}

func TestPlayerCache_FailedSetDropsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	layer := newTestLayer(t)
	boom := errors.New("not allowed")

	mock := mocks.NewMockPlayer(ctrl)
	mock.EXPECT().ID().Return("p1").AnyTimes()
	mock.EXPECT().TypeID().Return(foreign.PlayerTypeID).AnyTimes()
	mock.EXPECT().SetGameMode(foreign.GameModeSpectator).Return(boom)
	mock.EXPECT().GetGameMode().Return(foreign.GameModeSurvival, nil).Times(1)

	player := wrapAs[foreign.Player](layer, mock)

	require.ErrorIs(t, player.SetGameMode(foreign.GameModeSpectator), boom)

	for range 2 {
		mode, err := player.GetGameMode()
		require.NoError(t, err)
		assert.Equal(t, foreign.GameModeSurvival, mode)
	}
}

func TestPlayerCache_RemoveForgetsGameMode(t *testing.T) {
	layer := newTestLayer(t)
	world := testsupport.NewWorld()
	world.SpawnPlayer("Steve")
	player := cachedPlayer(t, layer, world)

	_, err := player.GetGameMode()
	require.NoError(t, err)
	require.NoError(t, player.Remove())

	computed := false
	_, err = layer.Store().GetOrCompute(BucketGameMode, player.ID(), func() (any, error) {
		computed = true
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, computed)
}

func TestPredicates_AreExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	entity := EntityRegistration()
	player := PlayerRegistration()

	zombie := mocks.NewMockEntity(ctrl)
	zombie.EXPECT().TypeID().Return("minecraft:zombie").AnyTimes()

	steve := mocks.NewMockPlayer(ctrl)
	steve.EXPECT().TypeID().Return(foreign.PlayerTypeID).AnyTimes()

	// Player-shaped objects with a non-player tag stay with the entity family.
	npc := mocks.NewMockPlayer(ctrl)
	npc.EXPECT().TypeID().Return("minecraft:npc").AnyTimes()

	tests := []struct {
		name       string
		value      any
		wantEntity bool
		wantPlayer bool
	}{
		{name: "entity", value: zombie, wantEntity: true},
		{name: "player", value: steve, wantPlayer: true},
		{name: "player shaped npc", value: npc, wantEntity: true},
		{name: "not an entity", value: &staticDimension{id: "x"}},
		{name: "tagged without effect target", value: taggedOnly{typeID: foreign.PlayerTypeID}},
		{name: "effect target without entity surface", value: effectOnly{typeID: "minecraft:zombie"}},
		{name: "nil", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEntity, entity.Match(tt.value))
			assert.Equal(t, tt.wantPlayer, player.Match(tt.value))
		})
	}
}

// taggedOnly carries a type tag but cannot receive effects.
type taggedOnly struct{ typeID string }

func (v taggedOnly) TypeID() string { return v.typeID }

// effectOnly carries the effect target marker and a tag but none of the
// other entity methods.
type effectOnly struct{ typeID string }

func (v effectOnly) TypeID() string              { return v.typeID }
func (v effectOnly) AddEffect(string, int) error { return nil }

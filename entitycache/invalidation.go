package entitycache

import "github.com/goliatone/go-cache-layer/foreign"

// bindDimensionChange keeps cached player dimensions in step with dimension
// changes the cache did not see, such as portal travel. Non-player entities
// have no such notification, so their cached dimension only follows
// teleports made through the cache.
func bindDimensionChange(l *Layer, events foreign.AfterEvents) string {
	return events.PlayerDimensionChange().Subscribe(func(e foreign.PlayerDimensionChangeEvent) {
		if e.Player == nil {
			return
		}
		id := e.Player.ID()
		if e.ToDimension == nil {
			l.store.Delete(BucketDimension, id)
		} else {
			l.store.Set(BucketDimension, id, wrapAs(l, e.ToDimension))
		}
		l.logger.Debug("dimension refreshed", "entity", id)
	})
}

// bindGameModeChange keeps cached game modes in step with changes made
// outside the cache, such as commands.
func bindGameModeChange(l *Layer, events foreign.AfterEvents) string {
	return events.PlayerGameModeChange().Subscribe(func(e foreign.PlayerGameModeChangeEvent) {
		if e.Player == nil {
			return
		}
		id := e.Player.ID()
		l.store.Set(BucketGameMode, id, e.ToGameMode)
		l.logger.Debug("game mode refreshed", "player", id, "mode", e.ToGameMode)
	})
}

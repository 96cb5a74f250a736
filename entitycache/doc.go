// Package entitycache puts a memoizing layer in front of a foreign.World.
//
// A Layer wraps the world and everything reached through it. Entities and
// players are claimed by registered handler families that serve expensive
// reads from a cache.Store or cache.IDStore and write changes through to the
// original. Values no family claims are wrapped by pass-through decorators so
// that the entities they lead to are wrapped as well.
//
// Basic usage:
//
//	layer, err := entitycache.New(entitycache.WithEvents(world.AfterEvents()))
//	if err != nil {
//	    return err
//	}
//	cached := layer.WrapWorld(world)
//	entity, err := cached.GetEntity("42")
//	dimension, err := entity.Dimension() // read once, then served from cache
//
// Cached values are kept up to date by the decorators' own writes and by the
// after-event subscriptions each family makes when it is registered. Changes
// made to the foreign runtime in any other way are not observed; call
// Layer.ResetCache to drop everything.
//
// Custom families are added with WithRegistration or Layer.Register. The
// registry is ordered and the first matching predicate wins, so a family
// registered later never claims a value an earlier family already matches.
package entitycache

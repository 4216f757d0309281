package engine

import (
	"github.com/rs/zerolog"
)

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component *ComponentStore
	Logger    zerolog.Logger
}

// NewSystemBase initializes base dependencies from world
// Call once in system constructor, after NewGame has wired resources
func NewSystemBase(w *World, name string) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  &w.Resources,
		Component: &w.Components,
		Logger:    w.Logger.With().Str("system", name).Logger(),
	}
}

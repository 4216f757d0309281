package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lobber/core"
)

var (
	ErrNoViewpoint        = errors.New("no viewpoint entity")
	ErrMultipleViewpoints = errors.New("more than one viewpoint entity")
)

// System is a unit of per-frame or per-tick game logic
type System interface {
	Init()
	Name() string
	Priority() int // Lower values run first
	Update()
}

// World contains all entities, their components and the game resources
// Thread-Safety: none, owned by the game goroutine
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resource
	Logger     zerolog.Logger

	frameSystems []System
	fixedSystems []System
}

// NewWorld creates an empty world with all component stores allocated
func NewWorld(logger zerolog.Logger) *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Logger:       logger,
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyBatch removes all components of the given entities
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	for _, s := range w.Components.all() {
		s.RemoveMany(entities)
	}
}

// Viewpoint returns the single viewpoint entity
func (w *World) Viewpoint() (core.Entity, error) {
	switch n := w.Components.Viewpoint.Len(); n {
	case 0:
		return 0, ErrNoViewpoint
	case 1:
		return w.Components.Viewpoint.ids[0], nil
	default:
		return 0, fmt.Errorf("%w: found %d", ErrMultipleViewpoints, n)
	}
}

// MustViewpoint returns the single viewpoint entity and panics if there is not exactly one
func (w *World) MustViewpoint() core.Entity {
	e, err := w.Viewpoint()
	if err != nil {
		panic(err)
	}
	return e
}

// AddSystem registers a per-frame system, ordered by priority
func (w *World) AddSystem(system System) {
	w.frameSystems = insertByPriority(w.frameSystems, system)
}

// AddFixedSystem registers a fixed-step system, ordered by priority
func (w *World) AddFixedSystem(system System) {
	w.fixedSystems = insertByPriority(w.fixedSystems, system)
}

// insertByPriority keeps registration order among equal priorities
func insertByPriority(systems []System, system System) []System {
	systems = append(systems, system)
	for i := len(systems) - 1; i > 0 && systems[i-1].Priority() > systems[i].Priority(); i-- {
		systems[i-1], systems[i] = systems[i], systems[i-1]
	}
	return systems
}

// Update runs all frame systems sequentially
func (w *World) Update() {
	for _, s := range w.frameSystems {
		s.Update()
	}
}

// Step runs all fixed-step systems once
func (w *World) Step() {
	for _, s := range w.fixedSystems {
		s.Update()
	}
}

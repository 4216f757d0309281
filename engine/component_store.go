package engine

import (
	"github.com/lixenwraith/lobber/component"
)

// ComponentStore provides cached pointers to the typed component stores
// Initialized once per system; pointers remain valid for the world lifetime
type ComponentStore struct {
	Body       *Store[component.BodyComponent]
	Projectile *Store[component.ProjectileComponent]
	Viewpoint  *Store[component.ViewpointComponent]
	Landmark   *Store[component.LandmarkComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Body:       NewStore[component.BodyComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Viewpoint:  NewStore[component.ViewpointComponent](),
		Landmark:   NewStore[component.LandmarkComponent](),
	}
}

// all returns every store for lifecycle operations
func (cs ComponentStore) all() []AnyStore {
	return []AnyStore{cs.Body, cs.Projectile, cs.Viewpoint, cs.Landmark}
}

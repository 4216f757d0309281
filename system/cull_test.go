package system

import (
	"testing"

	"github.com/lixenwraith/lobber/config"
	"github.com/lixenwraith/lobber/event"
	"github.com/lixenwraith/lobber/status"
)

func TestCullKeepsNewestProjectiles(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.MaxProjectiles = 2
	f := newFocusedFixture(t, cfg)
	g := f.game

	for _, p := range []float64{1, 2, 3} {
		g.World.Resources.Spawns.Push(event.SpawnRequest{Power: p})
	}
	g.Frame(0) // spawn runs before cull in the same frame

	entities := g.World.Components.Projectile.Entities()
	if len(entities) != 2 {
		t.Fatalf("Expected 2 projectiles, got %d", len(entities))
	}
	first, _ := g.World.Components.Projectile.Get(entities[0])
	if first.Power != 2 {
		t.Errorf("Expected oldest survivor power 2, got %v", first.Power)
	}
	if g.World.Components.Body.Len() != 2 {
		t.Errorf("Expected bodies culled with projectiles, got %d", g.World.Components.Body.Len())
	}
	if n := g.Status.Ints.Get(status.KeyCullTotal).Load(); n != 1 {
		t.Errorf("Expected 1 culled, got %d", n)
	}
}

func TestCullUnlimited(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.MaxProjectiles = 0
	f := newFocusedFixture(t, cfg)

	for i := 0; i < 10; i++ {
		f.game.World.Resources.Spawns.Push(event.SpawnRequest{Power: 1})
	}
	f.game.Frame(0)
	if n := f.game.World.Components.Projectile.Len(); n != 10 {
		t.Errorf("Expected 10 projectiles, got %d", n)
	}
}

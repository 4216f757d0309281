package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/core"
	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/status"
	"github.com/lixenwraith/lobber/system"
	"github.com/lixenwraith/lobber/vmath"
)

// Glyphs
const (
	glyphLandmark   = '◆'
	glyphProjectile = '●'
	glyphFar        = '·'
	glyphShadow     = '_'
	glyphHorizon    = '─'
	glyphCrosshair  = '+'
	glyphBarFill    = '█'
	glyphBarEmpty   = '░'
)

// farDepth is the distance beyond which projectiles shrink to a dot
const farDepth = 40.0

// fogDepth is the distance at which colors fully fade into the horizon tint
const fogDepth = 120.0

var statusKeys = []string{
	status.KeyFocused,
	status.KeyChargePower,
	status.KeyBodies,
	status.KeySpawnTotal,
	status.KeyBounceTotal,
	status.KeyTicks,
}

type sprite struct {
	x, y  int
	depth float64
	glyph rune
	color RGB
}

// Renderer draws the world onto a tcell screen; it only reads simulation state
type Renderer struct {
	screen  tcell.Screen
	mode    ColorMode
	sprites []sprite
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, mode ColorMode) *Renderer {
	return &Renderer{
		screen:  screen,
		mode:    mode,
		sprites: make([]sprite, 0, 64),
	}
}

func (r *Renderer) style(c RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(r.mode.Color(c))
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(w *engine.World) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width < 1 || height < 3 {
		r.screen.Show()
		return
	}

	// Row 0 status, last row power bar, the rest is the view
	viewHeight := height - 2
	vp := w.MustViewpoint()
	view, _ := w.Components.Viewpoint.Get(vp)
	proj := NewProjection(view, width, viewHeight)

	if row, ok := proj.HorizonRow(); ok && row >= 0 && row < viewHeight {
		st := r.style(RGBHorizon)
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, row+1, glyphHorizon, nil, st)
		}
	}

	r.collectSprites(w, proj)
	for _, s := range r.sprites {
		if s.x < 0 || s.x >= width || s.y < 0 || s.y >= viewHeight {
			continue
		}
		r.screen.SetContent(s.x, s.y+1, s.glyph, nil, r.style(s.color))
	}

	focus := w.Resources.Focus
	if focus.Focused {
		r.screen.SetContent(width/2, viewHeight/2+1, glyphCrosshair, nil, r.style(RGBCrosshair))
	}

	r.drawStatus(w, width)
	r.drawPowerBar(w, width, height-1)
	r.screen.Show()
}

// collectSprites projects landmarks and projectiles, sorted far to near
func (r *Renderer) collectSprites(w *engine.World, proj Projection) {
	r.sprites = r.sprites[:0]

	w.Components.Landmark.Each(func(_ core.Entity, l *component.LandmarkComponent) {
		if x, y, d, ok := proj.Project(l.Position); ok {
			r.sprites = append(r.sprites, sprite{x, y, d, glyphLandmark, fog(Hue(l.Hue), d)})
		}
	})

	lead := w.Resources.Time.Alpha * w.Resources.Time.FixedSeconds()
	for _, e := range w.Components.Projectile.Entities() {
		body, ok := w.Components.Body.Get(e)
		if !ok {
			continue
		}
		p, _ := w.Components.Projectile.Get(e)
		color := Hue(p.Hue)
		pos := DrawPosition(body, lead)

		if pos.Y > 0 {
			shadow := pos
			shadow.Y = 0
			if x, y, d, ok := proj.Project(shadow); ok {
				r.sprites = append(r.sprites, sprite{x, y, d + 1e-3, glyphShadow, fog(RGBHorizon, d)})
			}
		}

		if x, y, d, ok := proj.Project(pos); ok {
			glyph := glyphProjectile
			if d > farDepth {
				glyph = glyphFar
			}
			r.sprites = append(r.sprites, sprite{x, y, d, glyph, fog(color, d)})
		}
	}

	sort.SliceStable(r.sprites, func(i, j int) bool {
		return r.sprites[i].depth > r.sprites[j].depth
	})
}

// DrawPosition extrapolates a body by lead seconds of the partial step not yet simulated
// The result never dips below the ground plane
func DrawPosition(b component.BodyComponent, lead float64) vmath.Vec3F {
	pos := vmath.V3FAddScaled(b.Position, b.Velocity, lead)
	if b.Position.Y >= 0 && pos.Y < 0 {
		pos.Y = 0
	}
	return pos
}

func fog(c RGB, depth float64) RGB {
	return c.Blend(RGBHorizon, depth/fogDepth)
}

func (r *Renderer) drawStatus(w *engine.World, width int) {
	text := w.Resources.Status.Summary(statusKeys...)
	if !w.Resources.Focus.Focused {
		text = "[esc] capture  " + text
	} else {
		text = "[click/space] launch  [wasd] move  [esc] release  [q] quit  " + text
	}
	r.drawText(0, 0, width, text, r.style(RGBStatus))
}

func (r *Renderer) drawText(x, y, width int, text string, st tcell.Style) {
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
}

func (r *Renderer) drawPowerBar(w *engine.World, width, row int) {
	launch := w.Resources.Config.Launch
	fb := system.PowerFeedback(*w.Resources.Charge, launch.PowerMin, launch.PowerMax)

	cells := min(parameter.PowerBarCells, width)
	filled := int(fb.Width*float64(cells) + 0.5)
	start := (width - cells) / 2

	fill := r.style(FromColorful(fb.Color))
	empty := r.style(RGBHorizon)
	for i := 0; i < cells; i++ {
		if i < filled {
			r.screen.SetContent(start+i, row, glyphBarFill, nil, fill)
		} else {
			r.screen.SetContent(start+i, row, glyphBarEmpty, nil, empty)
		}
	}
}

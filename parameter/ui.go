package parameter

// Power bar
const (
	// PowerBarCells is the bar length in terminal cells
	PowerBarCells = 30

	// PowerBarNeutral is the idle bar color, linear RGB gray
	PowerBarNeutral = 0.2
)

// Scene
const (
	// LandmarkCount is the number of static hue markers in the scene row
	LandmarkCount = 36

	// LandmarkSpacing is the X distance between markers
	LandmarkSpacing = 2.0

	// LandmarkOffset shifts the row so index 8 sits at X=0
	LandmarkOffset = -8.0

	// LandmarkDistance is the Z of the marker row, in front of the viewpoint
	LandmarkDistance = -50.0

	// PaletteSize is the number of projectile hues, 10° apart
	PaletteSize = 36

	// DefaultSeed seeds the projectile palette picker
	DefaultSeed = 0x44617665

	// MaxProjectiles caps live projectiles, oldest culled first (0 = unlimited)
	MaxProjectiles = 256
)

package component

// ProjectileComponent marks a launched body with its launch parameters
type ProjectileComponent struct {
	Power      float64 // Charge power captured at release
	Hue        float64 // Palette hue in degrees [0, 360)
	SpawnFrame int64   // Frame the spawn request was produced in
}

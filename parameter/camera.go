package parameter

// View controller
const (
	// MouseSensitivity is the base turn rate, scaled by 100/min(viewport) so turn speed is resolution independent
	MouseSensitivity = 0.01

	// SensitivityReference is the viewport extent at which MouseSensitivity applies unscaled
	SensitivityReference = 100.0

	// FieldOfView is the vertical field of view in radians used by the terminal projection
	FieldOfView = 1.2

	// CellAspect is terminal cell height over width
	CellAspect = 2.0
)

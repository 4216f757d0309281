package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec3F) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{1, 1, 6, 1},
		{6, 1, 6, 6},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v): expected %v, got %v", tt.v, tt.lo, tt.hi, tt.want, got)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Expected 2, got %v", got)
	}
	if got := Lerp(2, 4, 1); got != 4 {
		t.Errorf("Expected 4, got %v", got)
	}
}

func TestForwardFromYawPitch(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		want       Vec3F
	}{
		{"identity looks down -Z", 0, 0, Vec3F{0, 0, -1}},
		{"quarter turn left looks down -X", math.Pi / 2, 0, Vec3F{-1, 0, 0}},
		{"quarter turn right looks down +X", -math.Pi / 2, 0, Vec3F{1, 0, 0}},
		{"straight up", 0, HalfPi, Vec3F{0, 1, 0}},
		{"straight down", 0, -HalfPi, Vec3F{0, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForwardFromYawPitch(tt.yaw, tt.pitch)
			if !nearVec(got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, -1.2, 2.9} {
		for _, pitch := range []float64{0, 0.7, -0.7, 1.5} {
			f := ForwardFromYawPitch(yaw, pitch)
			r := RightFromYaw(yaw)
			u := UpFromYawPitch(yaw, pitch)

			if !near(V3FMag(f), 1) || !near(V3FMag(r), 1) || !near(V3FMag(u), 1) {
				t.Errorf("yaw=%v pitch=%v: basis not unit length", yaw, pitch)
			}
			if !near(V3FDot(f, r), 0) || !near(V3FDot(f, u), 0) || !near(V3FDot(r, u), 0) {
				t.Errorf("yaw=%v pitch=%v: basis not orthogonal", yaw, pitch)
			}
		}
	}
}

func TestV3FNormalizeZero(t *testing.T) {
	if got := V3FNormalize(Vec3F{}); got != Zero3F {
		t.Errorf("Expected zero vector, got %+v", got)
	}
	got := V3FNormalize(Vec3F{3, 0, 4})
	if !nearVec(got, Vec3F{0.6, 0, 0.8}) {
		t.Errorf("Expected {0.6 0 0.8}, got %+v", got)
	}
}

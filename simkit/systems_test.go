package simkit

import (
	"math"
	"testing"
)

func TestApplyVelocityIntegratesPosition(t *testing.T) {
	positions := []Position{{Vec2{0, 0}}, {Vec2{10, -5}}}
	velocities := []Velocity{{Vec2{2, 4}}, {Vec2{-1, 0}}}

	ApplyVelocity(positions, velocities, 0.5)

	if positions[0].Vec2 != (Vec2{1, 2}) {
		t.Errorf("positions[0] = %+v", positions[0].Vec2)
	}
	if positions[1].Vec2 != (Vec2{9.5, -5}) {
		t.Errorf("positions[1] = %+v", positions[1].Vec2)
	}
}

func TestApplyAccelerationIntegratesVelocity(t *testing.T) {
	velocities := []Velocity{{Vec2{0, 0}}}
	accelerations := []Acceleration{{Vec2{0, -Gravity}}}

	// One second of free fall.
	for i := 0; i < 100; i++ {
		ApplyAcceleration(velocities, accelerations, 0.01)
	}

	if math.Abs(velocities[0].Y+Gravity) > 1e-9 {
		t.Errorf("velocity after 1s of gravity = %v, want %v", velocities[0].Y, -Gravity)
	}
}

func TestSystemsTolerateMismatchedLengths(t *testing.T) {
	positions := []Position{{Vec2{1, 1}}}
	velocities := []Velocity{{Vec2{1, 0}}, {Vec2{9, 9}}}

	ApplyVelocity(positions, velocities, 1)

	if positions[0].Vec2 != (Vec2{2, 1}) {
		t.Errorf("positions[0] = %+v", positions[0].Vec2)
	}
	if velocities[1].Vec2 != (Vec2{9, 9}) {
		t.Errorf("unpaired velocity changed: %+v", velocities[1].Vec2)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Errorf("normalized length = %v", v.Len())
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("zero vector should normalize to zero")
	}
}

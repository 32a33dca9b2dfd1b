package simkit

// ApplyVelocity integrates position from velocity over dt seconds.
// Components are paired by index; extra entries in either slice are
// left untouched.
func ApplyVelocity(positions []Position, velocities []Velocity, dt float64) {
	n := min(len(positions), len(velocities))
	for i := 0; i < n; i++ {
		positions[i].Vec2 = positions[i].Add(velocities[i].Scale(dt))
	}
}

// ApplyAcceleration integrates velocity from acceleration over dt
// seconds. Components are paired by index.
func ApplyAcceleration(velocities []Velocity, accelerations []Acceleration, dt float64) {
	n := min(len(velocities), len(accelerations))
	for i := 0; i < n; i++ {
		velocities[i].Vec2 = velocities[i].Add(accelerations[i].Scale(dt))
	}
}

package simkit

// Position locates an entity in world space.
type Position struct {
	Vec2
}

// Velocity is an entity's rate of position change, in units per second.
type Velocity struct {
	Vec2
}

// Acceleration is an entity's rate of velocity change, in units per
// second squared.
type Acceleration struct {
	Vec2
}

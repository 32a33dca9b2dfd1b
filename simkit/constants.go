package simkit

// Physical constants.
const (
	// Gravity is gravitational acceleration at the Earth's surface (m/s²).
	Gravity = 9.81

	// SpeedOfLight is the speed of light in vacuum (m/s).
	SpeedOfLight = 299_792_458.0

	// Planck is Planck's constant (J·s).
	Planck = 6.62607015e-34
)

package game

// Grid dimensions (in cells).
const (
	GridWidth  = 12
	GridHeight = 12
)

// Simulation cadence: seconds of wall-clock time per snake step.
const TickPeriod = 0.4

// Window defaults. The board is square, so the window is too; the camera
// auto-fits the grid to whatever framebuffer it actually gets.
const (
	WindowWidth  = 576
	WindowHeight = 576
)

// TileSpriteSize is the rendered side of a tile in world units (1 world
// unit = 1 cell). Slightly under 1 so the background shows through as
// grid lines.
const TileSpriteSize = 0.94

// MaxFrameDelta clamps per-frame dt so a stalled frame (window drag,
// debugger pause) can't dump seconds of time into the game clock at once.
const MaxFrameDelta = 0.1

// Config carries the session parameters that are fixed at session start.
type Config struct {
	GridWidth  int
	GridHeight int
	TickPeriod float64 // seconds per step
	Seed       uint64  // food placement RNG seed
}

// DefaultConfig returns the standard 12x12 board at the standard cadence.
func DefaultConfig() Config {
	return Config{
		GridWidth:  GridWidth,
		GridHeight: GridHeight,
		TickPeriod: TickPeriod,
		Seed:       1,
	}
}

package game

// Camera maps world space (1 unit = 1 cell) to the framebuffer. The board
// is fixed, so the camera never pans; it centres the grid and scales to fit.
type Camera struct {
	X, Y float64 // world space, camera centre
	Zoom float64 // screen pixels per world unit

	// Screen shake (fired on the terminal collision).
	ShakeX, ShakeY float64
	ShakeTimer     float64
	ShakeIntensity float64
}

// NewCamera returns a camera centred on the grid.
func NewCamera(g Grid) Camera {
	return Camera{
		X: float64(g.Width) / 2,
		Y: float64(g.Height) / 2,
	}
}

// FitZoom scales the grid to the framebuffer with a half-cell margin on
// each side.
func (c *Camera) FitZoom(g Grid, fbW, fbH int) {
	zx := float64(fbW) / (float64(g.Width) + 1)
	zy := float64(fbH) / (float64(g.Height) + 1)
	if zx < zy {
		c.Zoom = zx
	} else {
		c.Zoom = zy
	}
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

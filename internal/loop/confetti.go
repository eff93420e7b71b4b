package loop

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/wellfall/internal/draw"
	"github.com/tomz197/wellfall/internal/game"
)

// particlePool reuses confetti particles to avoid per-burst allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &particle{}
	},
}

// particle is a short-lived confetti fleck in logical play coordinates.
type particle struct {
	x, y        float64
	vx, vy      float64
	lifetime    float64 // Seconds remaining
	maxLifetime float64
}

const confettiGravity = 260.0
const confettiDrag = 0.96

// confetti holds the active win-celebration particles.
type confetti struct {
	particles []*particle
}

// Burst launches count particles upward and outward from (x, y).
func (c *confetti) Burst(x, y float64, count int) {
	for i := 0; i < count; i++ {
		// Upward cone with spread
		angle := -math.Pi/2 + (rand.Float64()-0.5)*math.Pi*0.9
		speed := 160 + rand.Float64()*180
		life := 0.8 + rand.Float64()*0.9

		p := particlePool.Get().(*particle)
		p.x = x
		p.y = y
		p.vx = math.Cos(angle) * speed
		p.vy = math.Sin(angle) * speed
		p.lifetime = life
		p.maxLifetime = life
		c.particles = append(c.particles, p)
	}
}

// Update moves particles and drops expired ones back into the pool.
func (c *confetti) Update(dt float64) {
	kept := c.particles[:0]
	for _, p := range c.particles {
		p.lifetime -= dt
		if p.lifetime <= 0 || p.y > game.PlayHeight {
			particlePool.Put(p)
			continue
		}

		dragFactor := math.Pow(confettiDrag, dt*60)
		p.vx *= dragFactor
		p.vy = p.vy*dragFactor + confettiGravity*dt
		p.x += p.vx * dt
		p.y += p.vy * dt

		kept = append(kept, p)
	}
	c.particles = kept
}

// Draw renders all live particles as single pixels.
func (c *confetti) Draw(canvas *draw.Canvas) {
	for _, p := range c.particles {
		// Skip nearly expired flecks so the burst thins out instead of
		// vanishing at once.
		if p.lifetime/p.maxLifetime < 0.2 {
			continue
		}
		canvas.SetFloat(p.x, p.y)
	}
}

// Clear releases all particles, e.g. when a new run starts mid-celebration.
func (c *confetti) Clear() {
	for _, p := range c.particles {
		particlePool.Put(p)
	}
	c.particles = c.particles[:0]
}

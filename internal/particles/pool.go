// Package particles runs the line-clear burst effect: a fixed arena of
// short-lived sparks thrown outward from the cleared row, falling under
// gravity with horizontal drag. Positions are effect-space pixels so
// the physics is independent of how the presentation maps sparks to
// terminal cells.
package particles

import (
	"image/color"
	"math"
	"math/rand"
)

// DefaultCapacity is the arena size used when New gets no explicit
// capacity.
const DefaultCapacity = 4096

// Burst and integration tunables, in effect-space pixels and seconds.
const (
	burstMin   = 120 // sparks per burst: burstMin + [0, burstExtra)
	burstExtra = 80

	jitterX = 32.0 // spawn spread around the origin, full width
	jitterY = 64.0

	speedMin   = 100.0
	speedRange = 300.0

	liftMin   = 50.0 // extra upward velocity on top of the radial speed
	liftRange = 100.0

	lifeMin   = 0.6
	lifeRange = 0.6

	tintRange = 40 // per-spark channel offset: [0, tintRange) - tintRange/2

	gravityY = 900.0
	dragX    = 0.8
)

// Particle is one spark. Fields are exported so the renderer can read
// position and color directly during iteration.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      float64
	Lifespan float64
	Color    color.RGBA
	alive    bool
}

// Alpha is the spark's remaining opacity: 1 at spawn, fading linearly
// to 0 at the end of its lifespan.
func (p *Particle) Alpha() float64 {
	if p.Lifespan <= 0 {
		return 0
	}
	a := 1 - p.Age/p.Lifespan
	if a < 0 {
		return 0
	}
	return a
}

// Pool is a fixed-capacity particle arena. Slots are reused first-fit;
// when every slot is live, further spawns are dropped silently.
type Pool struct {
	parts []Particle
	rng   *rand.Rand
}

// New returns a pool with the given capacity, seeded for deterministic
// bursts. Capacities at or below zero fall back to DefaultCapacity.
func New(capacity int, seed int64) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{
		parts: make([]Particle, capacity),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// SpawnBurst fills free slots with a fresh burst of sparks centered on
// (x, y). Sparks scatter around the origin, fly outward at a random
// angle with an upward bias, and share a single per-spark channel
// offset so the burst stays in one color family.
func (p *Pool) SpawnBurst(x, y float64, base color.RGBA) {
	count := burstMin + p.rng.Intn(burstExtra)
	for range count {
		slot := p.freeSlot()
		if slot == nil {
			return
		}

		ang := p.rng.Float64() * 2 * math.Pi
		spd := speedMin + p.rng.Float64()*speedRange

		slot.X = x + (p.rng.Float64()-0.5)*jitterX
		slot.Y = y + (p.rng.Float64()-0.5)*jitterY
		slot.VX = math.Cos(ang) * spd
		slot.VY = math.Sin(ang)*spd - (liftMin + p.rng.Float64()*liftRange)
		slot.Age = 0
		slot.Lifespan = lifeMin + p.rng.Float64()*lifeRange

		d := int(p.rng.Float64()*tintRange) - tintRange/2
		slot.Color = color.RGBA{
			R: clampByte(int(base.R) + d),
			G: clampByte(int(base.G) + d),
			B: clampByte(int(base.B) + d),
			A: base.A,
		}
		slot.alive = true
	}
}

// freeSlot returns the first dead slot, or nil when the arena is full.
func (p *Pool) freeSlot() *Particle {
	for i := range p.parts {
		if !p.parts[i].alive {
			return &p.parts[i]
		}
	}
	return nil
}

// clampByte pins v to a displayable byte, [0, 255].
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Update integrates every live spark forward by dt seconds. A spark
// whose age reaches its lifespan dies; the rest accelerate downward
// and bleed horizontal speed to drag.
func (p *Pool) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range p.parts {
		pt := &p.parts[i]
		if !pt.alive {
			continue
		}
		pt.Age += dt
		if pt.Age >= pt.Lifespan {
			pt.alive = false
			continue
		}
		pt.VY += gravityY * dt
		pt.VX *= 1 - dragX*dt
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
	}
}

// Each calls fn for every live spark.
func (p *Pool) Each(fn func(*Particle)) {
	for i := range p.parts {
		if p.parts[i].alive {
			fn(&p.parts[i])
		}
	}
}

// Alive returns the number of live sparks.
func (p *Pool) Alive() int {
	n := 0
	for i := range p.parts {
		if p.parts[i].alive {
			n++
		}
	}
	return n
}

// Cap returns the arena capacity.
func (p *Pool) Cap() int {
	return len(p.parts)
}

// Reset kills every spark. The rng keeps its sequence.
func (p *Pool) Reset() {
	for i := range p.parts {
		p.parts[i] = Particle{}
	}
}

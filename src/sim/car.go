package sim

import "liftsim/src/types"

// Car is a moving container for riding occupants. Occupants aboard always
// have the riding flag set and a floor equal to the car's; both update in
// lockstep as the car moves.
type Car struct {
	Floor   int
	Dir     types.Direction
	Stopped bool
	Group
	EnergyUp          float64
	EnergyDown        float64
	EnergyPerOccupant float64
}

func NewCar(energyUp, energyDown, energyPerOccupant float64) *Car {
	return &Car{
		Dir:               types.DirDown,
		Stopped:           true,
		EnergyUp:          energyUp,
		EnergyDown:        energyDown,
		EnergyPerOccupant: energyPerOccupant,
	}
}

// EnergySpent is the energy the car consumes this step: zero while stopped,
// otherwise the directional base cost plus a per-rider surcharge. Pure
// function of current state.
func (c *Car) EnergySpent() float64 {
	if c.Stopped {
		return 0
	}
	base := c.EnergyDown
	if c.Dir == types.DirUp {
		base = c.EnergyUp
	}
	return base + c.EnergyPerOccupant*float64(len(c.Group))
}

// NearestRideTarget returns the aboard destination closest to the current
// floor. Equidistant destinations tie-break to the lower floor index. ok is
// false when nobody is aboard.
func (c *Car) NearestRideTarget() (floor int, ok bool) {
	best, bestDist := 0, -1
	for _, o := range c.Group {
		dist := abs(o.Dest - c.Floor)
		if bestDist == -1 || dist < bestDist || (dist == bestDist && o.Dest < best) {
			best, bestDist = o.Dest, dist
		}
	}
	if bestDist == -1 {
		return 0, false
	}
	return best, true
}

// Advance moves the car one floor in its direction; a stopped car holds
// position. Every rider's floor updates in lockstep.
func (c *Car) Advance() {
	if c.Stopped {
		return
	}
	c.Floor += int(c.Dir)
	for _, o := range c.Group {
		o.Floor = c.Floor
	}
}

// Alight removes and returns the riders destined for the current floor,
// clearing their riding flag.
func (c *Car) Alight() []*Occupant {
	alighted := c.drain(func(o *Occupant) bool { return o.Dest == c.Floor })
	for _, o := range alighted {
		o.Riding = false
	}
	return alighted
}

// Board takes ownership of occupants boarding from the current floor.
func (c *Car) Board(boarding []*Occupant) {
	for _, o := range boarding {
		if o.Riding {
			panic("occupant boarded a car twice")
		}
		o.Riding = true
		o.Floor = c.Floor
		c.absorb(o)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

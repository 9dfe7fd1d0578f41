// Dispatch policies deciding each car's next move. Every policy works from
// car-local and building-wide state only; cars never coordinate with each
// other, so starvation of far floors is possible under the greedy policies.
package dispatch

import (
	"fmt"

	"liftsim/src/sim"
	"liftsim/src/types"
)

// New returns the controller named by the policy tag. The choice is made
// once at construction; policies are never swapped mid-run.
func New(policy string, numCars int) (sim.Controller, error) {
	switch policy {
	case "random":
		return NewRandomPolicy(numCars), nil
	case "nearest":
		return &NearestPolicy{}, nil
	case "cheapest":
		return &CheapestPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown policy %q", policy)
}

// RandomPolicy sends each car to a uniformly drawn floor, resampling a new
// target once the previous one is reached.
type RandomPolicy struct {
	targets []int // pending target per car, -1 when unset
}

func NewRandomPolicy(numCars int) *RandomPolicy {
	targets := make([]int, numCars)
	for i := range targets {
		targets[i] = -1
	}
	return &RandomPolicy{targets: targets}
}

func (p *RandomPolicy) Dispatch(b *sim.Building, src sim.Source) {
	for i, car := range b.Cars {
		if p.targets[i] < 0 {
			p.targets[i] = src.IntN(len(b.Floors))
		}
		switch target := p.targets[i]; {
		case target > car.Floor:
			car.Stopped = false
			car.Dir = types.DirUp
		case target < car.Floor:
			car.Stopped = false
			car.Dir = types.DirDown
		default:
			car.Stopped = true
			p.targets[i] = -1
		}
		car.Advance()
	}
}

// NearestPolicy serves the closest demand first: riders aboard take priority
// over waiting floors, and a moving car stops wherever it finds work. Greedy
// and myopic: no multi-stop planning, no load balancing across cars.
type NearestPolicy struct{}

func (p *NearestPolicy) Dispatch(b *sim.Building, src sim.Source) {
	for _, car := range b.Cars {
		dir, stopped := decideNearest(b, car)
		commit(car, dir, stopped)
	}
}

func decideNearest(b *sim.Building, car *sim.Car) (types.Direction, bool) {
	if car.Stopped {
		if target, ok := car.NearestRideTarget(); ok && target != car.Floor {
			return dirToward(car.Floor, target), false
		}
		if target, _, ok := b.NearestWaitingFloor(car.Floor); ok {
			return dirToward(car.Floor, target), false
		}
		return car.Dir, true
	}
	return moving(b, car)
}

// moving applies the shared in-motion rules: force a stop at the boundary
// floors, stop where someone waits or a rider alights, otherwise keep going.
func moving(b *sim.Building, car *sim.Car) (types.Direction, bool) {
	if car.Dir == types.DirDown && car.Floor == 0 {
		return car.Dir, true
	}
	if car.Dir == types.DirUp && car.Floor == len(b.Floors)-1 {
		return car.Dir, true
	}
	if b.Floors[car.Floor].AnyWaiting() {
		return car.Dir, true
	}
	if car.AnyoneGoingTo(car.Floor) {
		return car.Dir, true
	}
	return car.Dir, false
}

// commit applies a decision and advances the car.
func commit(car *sim.Car, dir types.Direction, stopped bool) {
	car.Stopped = stopped
	if !stopped {
		car.Dir = dir
	}
	car.Advance()
}

// dirToward points from one floor at another. Callers never pass equal
// floors.
func dirToward(from, to int) types.Direction {
	if to > from {
		return types.DirUp
	}
	return types.DirDown
}

package dispatch

import (
	"liftsim/src/sim"
	"liftsim/src/types"
)

// CheapestPolicy is an energy-greedy variant of NearestPolicy. A stopped car
// what-if simulates serving each candidate target and picks the one with the
// lowest projected energy, ties going to the lower floor. In-motion rules are
// the same as NearestPolicy.
type CheapestPolicy struct{}

func (p *CheapestPolicy) Dispatch(b *sim.Building, src sim.Source) {
	for _, car := range b.Cars {
		dir, stopped := decideCheapest(b, car)
		commit(car, dir, stopped)
	}
}

func decideCheapest(b *sim.Building, car *sim.Car) (types.Direction, bool) {
	if !car.Stopped {
		return moving(b, car)
	}

	candidates := car.DestinationFloors()
	if len(candidates) == 0 {
		for i, f := range b.Floors {
			if f.AnyWaiting() {
				candidates = append(candidates, i)
			}
		}
	}

	best, bestCost := -1, 0.0
	for _, target := range candidates {
		if target == car.Floor {
			continue
		}
		cost := projectedEnergy(car, target)
		if best == -1 || cost < bestCost || (cost == bestCost && target < best) {
			best, bestCost = target, cost
		}
	}
	if best == -1 {
		return car.Dir, true
	}
	return dirToward(car.Floor, best), false
}

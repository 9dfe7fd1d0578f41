package dispatch

import (
	"liftsim/src/sim"

	"github.com/tiendc/go-deepcopy"
)

// projectedEnergy estimates the energy spent moving the car from where it
// stands to the target floor. The car state is deep-copied and advanced one
// floor at a time, so the estimate prices the current rider load without
// touching the real car.
func projectedEnergy(car *sim.Car, target int) float64 {
	simCar := new(sim.Car)
	if err := deepcopy.Copy(simCar, car); err != nil {
		panic(err)
	}
	if target == simCar.Floor {
		return 0
	}

	simCar.Stopped = false
	simCar.Dir = dirToward(simCar.Floor, target)

	total := 0.0
	for simCar.Floor != target {
		total += simCar.EnergySpent()
		simCar.Advance()
	}
	return total
}

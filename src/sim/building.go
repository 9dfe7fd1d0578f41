package sim

import (
	"math"

	"liftsim/src/config"
	"liftsim/src/logger"
	"liftsim/src/types"
)

// Controller decides each car's directional intent and advances it. Policies
// live in the dispatch package; the building only requires the capability.
type Controller interface {
	Dispatch(b *Building, src Source)
}

// Building owns all floors and cars, the arrival model and the running
// statistics, and drives the fixed per-step state machine.
type Building struct {
	Floors []*Floor
	Cars   []*Car

	arrivalRate   float64
	departureProb float64

	avgWaitTime float64
	waitCount   int
	avgEnergy   float64
	steps       int
}

// NewBuilding validates the configuration and constructs the building.
// Floors and cars persist for the whole run; occupants come and go.
func NewBuilding(cfg config.Config) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	floors := make([]*Floor, cfg.Floors)
	for i := range floors {
		floors[i] = NewFloor(i)
	}
	cars := make([]*Car, cfg.Cars)
	for i := range cars {
		cars[i] = NewCar(cfg.EnergyUp, cfg.EnergyDown, cfg.EnergyPerOccupant)
	}

	return &Building{
		Floors:        floors,
		Cars:          cars,
		arrivalRate:   cfg.ArrivalRate,
		departureProb: cfg.DepartureProb,
	}, nil
}

// Step runs one simulation step in fixed phase order: arrivals, departures,
// exchange, dispatch, metering, bookkeeping. The order is load-bearing; later
// phases depend on state the earlier phases produce within the same step.
func (b *Building) Step(ctrl Controller, src Source) {
	b.generateArrivals(src)
	b.generateDepartures(src)
	b.exchange()
	ctrl.Dispatch(b, src)
	b.meterEnergy()
	b.tickWaiting()
	b.updateDestinationProbs()
	b.steps++
}

// generateArrivals samples this step's arrival count and places the new
// occupants on the ground floor. Multi-car buildings draw Poisson(lambda);
// a single-car building keeps asking "one more arrival?" until a Bernoulli
// trial fails.
func (b *Building) generateArrivals(src Source) {
	count := 0
	if len(b.Cars) > 1 {
		count = Poisson(src, b.arrivalRate)
	} else {
		for Bernoulli(src, b.arrivalRate) {
			count++
		}
	}
	for i := 0; i < count; i++ {
		o := NewOccupant(b.departureProb, len(b.Floors), src)
		b.Floors[0].absorb(o)
		logger.Get().Debug().
			Str("occupant", o.ID.String()).
			Int("dest", o.Dest).
			Msg("arrival")
	}
}

// generateDepartures asks every non-waiting occupant on every floor whether
// they are heading home.
func (b *Building) generateDepartures(src Source) {
	for _, f := range b.Floors {
		f.SampleDepartures(src)
	}
}

// exchange transfers occupants between each stopped car and its floor:
// boarding first, then alighting, then ground-floor egress. Alighted wait
// times fold into the running average before they reset.
func (b *Building) exchange() {
	for _, car := range b.Cars {
		if !car.Stopped {
			continue
		}
		floor := b.Floors[car.Floor]

		car.Board(floor.DrainBoarding())

		alighted := car.Alight()
		b.recordWaits(alighted)
		for _, o := range alighted {
			o.ResolveArrival()
		}
		floor.Absorb(alighted)

		if floor.Index == 0 {
			if gone := floor.DrainEgress(); len(gone) > 0 {
				logger.Get().Debug().Int("count", len(gone)).Msg("egress")
			}
		}
	}
}

// recordWaits folds alighted occupants' wait times into the weighted running
// mean. A zero denominator short-circuits to 0 rather than propagating NaN.
func (b *Building) recordWaits(alighted []*Occupant) {
	num := float64(Group(alighted).AggregateWaitTime()) + b.avgWaitTime*float64(b.waitCount)
	denom := float64(len(alighted) + b.waitCount)
	if denom == 0 {
		b.avgWaitTime = 0
	} else {
		b.avgWaitTime = num / denom
	}
	b.waitCount += len(alighted)
}

// meterEnergy sums each car's energy for this step, evaluated once per step
// regardless of whether the car advanced, and updates the unweighted running
// mean over elapsed steps.
func (b *Building) meterEnergy() {
	spent := 0.0
	for _, car := range b.Cars {
		spent += car.EnergySpent()
	}
	b.avgEnergy = (b.avgEnergy*float64(b.steps) + spent) / float64(b.steps+1)
}

// tickWaiting increments the wait counter of every currently waiting
// occupant. Riders do not accumulate wait time.
func (b *Building) tickWaiting() {
	for _, f := range b.Floors {
		for _, o := range f.Group {
			if o.Waiting() {
				o.Tick()
			}
		}
	}
}

// updateDestinationProbs recomputes each floor's destination probability.
// A floor someone is waiting on, or that a rider is destined for, is a
// certain destination. Otherwise the ground floor weighs the arrival rate
// and upper floors weigh the composite departure probability.
func (b *Building) updateDestinationProbs() {
	destined := make(map[int]bool)
	for _, car := range b.Cars {
		for _, d := range car.DestinationFloors() {
			destined[d] = true
		}
	}

	n := float64(len(b.Floors))
	for i, f := range b.Floors {
		indicator := 0.0
		if f.AnyWaiting() || destined[i] {
			indicator = 1
		}
		var p float64
		if i == 0 {
			p = b.arrivalRate * (n - 1) / n
		} else {
			p = f.CompositeDepartureProbability()
		}
		f.DestinationProb = math.Max(indicator, p)
	}
}

// NearestWaitingFloor scans building-wide for the closest floor with a
// waiting occupant, excluding the car's own floor. Floors are scanned in
// ascending order and only a strictly smaller distance replaces the
// candidate, so equidistant floors tie-break to the lower index.
func (b *Building) NearestWaitingFloor(from int) (floor, dist int, ok bool) {
	bestDist := -1
	for i, f := range b.Floors {
		if i == from || !f.AnyWaiting() {
			continue
		}
		d := abs(i - from)
		if bestDist == -1 || d < bestDist {
			floor, bestDist = i, d
		}
	}
	if bestDist == -1 {
		return 0, 0, false
	}
	return floor, bestDist, true
}

func (b *Building) AvgWaitTime() float64 { return b.avgWaitTime }
func (b *Building) AvgEnergy() float64   { return b.avgEnergy }
func (b *Building) StepCount() int       { return b.steps }

// Snapshot produces the plain per-step state consumed by the renderer.
func (b *Building) Snapshot() types.Snapshot {
	snap := types.Snapshot{
		Step:        b.steps,
		Floors:      make([]types.FloorStatus, len(b.Floors)),
		Cars:        make([]types.CarStatus, len(b.Cars)),
		AvgWaitTime: b.avgWaitTime,
		AvgEnergy:   b.avgEnergy,
	}
	for i, f := range b.Floors {
		snap.Floors[i] = types.FloorStatus{
			Index:           f.Index,
			Occupants:       f.Count(),
			Waiting:         f.AnyWaiting(),
			DestinationProb: f.DestinationProb,
		}
	}
	for i, car := range b.Cars {
		snap.Cars[i] = types.CarStatus{
			Floor:     car.Floor,
			Occupants: car.Count(),
			Stopped:   car.Stopped,
			Direction: car.Dir,
		}
	}
	return snap
}

package sim

// Floor is one building level owning the occupants standing on it. Occupants
// here never have the riding flag set.
type Floor struct {
	Index int
	Group
	// DestinationProb is the chance this floor needs service next step.
	// Derived each step during bookkeeping; informational only.
	DestinationProb float64
}

func NewFloor(index int) *Floor {
	return &Floor{Index: index}
}

// CompositeDepartureProbability is the probability that at least one occupant
// here decides to leave next step: 1 minus the product of each occupant's
// stay probability. An empty floor gives 0.
func (f *Floor) CompositeDepartureProbability() float64 {
	if len(f.Group) == 0 {
		return 0
	}
	stay := 1.0
	for _, o := range f.Group {
		stay *= 1 - o.DepartureProb
	}
	return 1 - stay
}

// SampleDepartures asks every non-waiting occupant whether they are heading
// home. An occupant already en route elsewhere is never asked until it
// reaches its current destination.
func (f *Floor) SampleDepartures(src Source) {
	for _, o := range f.Group {
		if o.Waiting() {
			continue
		}
		o.SampleDeparture(src)
	}
}

// DrainBoarding atomically removes and returns everyone waiting for a car.
// A second call with no intervening arrival returns nothing.
func (f *Floor) DrainBoarding() []*Occupant {
	return f.drain(func(o *Occupant) bool { return o.Waiting() })
}

// DrainEgress removes the occupants who are leaving the building. Only ever
// meaningful on the ground floor, after the step's alighting and boarding, so
// someone who just alighted and wants out is considered.
func (f *Floor) DrainEgress() []*Occupant {
	return f.drain(func(o *Occupant) bool { return o.Leaving })
}

// Absorb takes ownership of occupants alighting from a car.
func (f *Floor) Absorb(arrivals []*Occupant) {
	for _, o := range arrivals {
		if o.Riding {
			panic("riding occupant absorbed by a floor")
		}
		o.Floor = f.Index
		f.absorb(o)
	}
}

package sim

import "github.com/google/uuid"

// Occupant is one individual moving through the building. An occupant is
// owned by exactly one floor or car at any instant; transfers are move-only.
type Occupant struct {
	ID            uuid.UUID
	Floor         int
	Dest          int
	Riding        bool
	Leaving       bool
	WaitTime      int
	DepartureProb float64
}

// NewOccupant creates an occupant arriving at the ground floor with a
// destination drawn uniformly over all floors.
func NewOccupant(departureProb float64, numFloors int, src Source) *Occupant {
	return &Occupant{
		ID:            uuid.New(),
		Dest:          src.IntN(numFloors),
		DepartureProb: departureProb,
	}
}

// Waiting reports whether the occupant stands on a floor waiting for a car.
func (o *Occupant) Waiting() bool {
	return !o.Riding && o.Floor != o.Dest
}

// SampleDeparture draws whether the occupant decides to head home, forcing
// the destination to the ground floor. The decision is sticky: once leaving,
// no further draws happen and the destination stays 0.
func (o *Occupant) SampleDeparture(src Source) bool {
	if o.Leaving {
		return true
	}
	if Bernoulli(src, o.DepartureProb) {
		o.Leaving = true
		o.Dest = 0
	}
	return o.Leaving
}

// Tick advances the wait counter. Callers only tick waiting occupants.
func (o *Occupant) Tick() {
	o.WaitTime++
}

// ResolveArrival resets the wait counter. Invoked exactly on the riding
// true to false transition, when the occupant reaches its destination.
func (o *Occupant) ResolveArrival() {
	o.WaitTime = 0
}

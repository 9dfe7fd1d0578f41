package sim

import "fmt"

// Group is the occupant-aggregation capability shared by floors and cars.
// Both embed it, so counting, waiting filters and wait-time sums are
// implemented once.
type Group []*Occupant

func (g Group) Count() int {
	return len(g)
}

// AnyWaiting reports whether anyone in the group is waiting for a car.
func (g Group) AnyWaiting() bool {
	for _, o := range g {
		if o.Waiting() {
			return true
		}
	}
	return false
}

func (g Group) WaitingCount() int {
	count := 0
	for _, o := range g {
		if o.Waiting() {
			count++
		}
	}
	return count
}

// AnyoneGoingTo reports whether a group member is destined for the floor.
func (g Group) AnyoneGoingTo(floor int) bool {
	for _, o := range g {
		if o.Dest == floor {
			return true
		}
	}
	return false
}

// DestinationFloors returns the distinct destinations across the group.
func (g Group) DestinationFloors() []int {
	var floors []int
	for _, o := range g {
		seen := false
		for _, f := range floors {
			if f == o.Dest {
				seen = true
				break
			}
		}
		if !seen {
			floors = append(floors, o.Dest)
		}
	}
	return floors
}

// AggregateWaitTime sums the accumulated wait time across the group.
func (g Group) AggregateWaitTime() int {
	total := 0
	for _, o := range g {
		total += o.WaitTime
	}
	return total
}

// absorb takes ownership of an occupant. An occupant already present means a
// transfer went wrong somewhere; that is unrecoverable.
func (g *Group) absorb(o *Occupant) {
	for _, held := range *g {
		if held == o {
			panic(fmt.Sprintf("occupant %s absorbed into a container twice", o.ID))
		}
	}
	*g = append(*g, o)
}

// drain removes and returns every occupant matching the predicate. The
// matches are decided against a stable snapshot, so removal never skips or
// double-counts a member.
func (g *Group) drain(match func(*Occupant) bool) []*Occupant {
	var removed []*Occupant
	kept := (*g)[:0]
	for _, o := range *g {
		if match(o) {
			removed = append(removed, o)
		} else {
			kept = append(kept, o)
		}
	}
	*g = kept
	return removed
}

package dispatch

import (
	"testing"

	"liftsim/src/config"
	"liftsim/src/sim"
	"liftsim/src/types"
)

// scriptSource replays scripted draws; exhausted queues fall back to 0.5 and
// floor 0.
type scriptSource struct {
	floats []float64
	ints   []int
}

func (s *scriptSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func testBuilding(t *testing.T, floors, cars int) *sim.Building {
	t.Helper()
	cfg := config.Default()
	cfg.Floors = floors
	cfg.Cars = cars
	cfg.ArrivalRate = 0.5
	cfg.DepartureProb = 0
	b, err := sim.NewBuilding(cfg)
	if err != nil {
		t.Fatalf("NewBuilding: %v", err)
	}
	return b
}

func TestNewUnknownPolicy(t *testing.T) {
	if _, err := New("sweep", 1); err == nil {
		t.Errorf("Expected error for unknown policy")
	}
}

func TestRandomPolicy(t *testing.T) {
	b := testBuilding(t, 4, 1)
	p := NewRandomPolicy(1)
	car := b.Cars[0]

	src := &scriptSource{ints: []int{2}}
	p.Dispatch(b, src)
	if car.Stopped || car.Dir != types.DirUp || car.Floor != 1 {
		t.Errorf("Expected car moving up to floor 1, got %+v", car)
	}

	// Target is pending: no new draw until it is reached.
	p.Dispatch(b, src)
	if car.Floor != 2 {
		t.Errorf("Expected car on floor 2, got %d", car.Floor)
	}
	p.Dispatch(b, src)
	if !car.Stopped || car.Floor != 2 {
		t.Errorf("Expected car stopped on its target, got %+v", car)
	}
	if p.targets[0] != -1 {
		t.Errorf("Expected target cleared on arrival, got %d", p.targets[0])
	}
}

func TestNearestPolicyPrefersRiders(t *testing.T) {
	b := testBuilding(t, 6, 1)
	car := b.Cars[0]
	car.Floor = 2
	car.Group = sim.Group{&sim.Occupant{Riding: true, Floor: 2, Dest: 4}}
	b.Floors[1].Group = sim.Group{&sim.Occupant{Floor: 1, Dest: 0}}

	// The waiting floor is closer, but riders aboard win.
	(&NearestPolicy{}).Dispatch(b, &scriptSource{})
	if car.Stopped || car.Dir != types.DirUp || car.Floor != 3 {
		t.Errorf("Expected car moving up toward its rider's destination, got %+v", car)
	}
}

func TestNearestPolicySeeksWaitingFloor(t *testing.T) {
	b := testBuilding(t, 6, 1)
	car := b.Cars[0]
	car.Floor = 3
	b.Floors[1].Group = sim.Group{&sim.Occupant{Floor: 1, Dest: 0}}

	(&NearestPolicy{}).Dispatch(b, &scriptSource{})
	if car.Stopped || car.Dir != types.DirDown || car.Floor != 2 {
		t.Errorf("Expected empty car heading down to the waiting floor, got %+v", car)
	}
}

func TestNearestPolicyIdleStaysPut(t *testing.T) {
	b := testBuilding(t, 4, 1)
	car := b.Cars[0]
	car.Floor = 2

	(&NearestPolicy{}).Dispatch(b, &scriptSource{})
	if !car.Stopped || car.Floor != 2 {
		t.Errorf("Expected idle car to stay stopped, got %+v", car)
	}
}

func TestNearestPolicyBoundaryStop(t *testing.T) {
	b := testBuilding(t, 4, 1)
	car := b.Cars[0]
	car.Floor = 3
	car.Stopped = false
	car.Dir = types.DirUp

	(&NearestPolicy{}).Dispatch(b, &scriptSource{})
	if !car.Stopped || car.Floor != 3 {
		t.Errorf("Expected forced stop at the top floor, got %+v", car)
	}
}

func TestNearestPolicyStopsForWaiting(t *testing.T) {
	b := testBuilding(t, 6, 1)
	car := b.Cars[0]
	car.Floor = 2
	car.Stopped = false
	car.Dir = types.DirUp
	b.Floors[2].Group = sim.Group{&sim.Occupant{Floor: 2, Dest: 5}}

	(&NearestPolicy{}).Dispatch(b, &scriptSource{})
	if !car.Stopped || car.Floor != 2 {
		t.Errorf("Expected moving car to stop for a waiting floor, got %+v", car)
	}
}

func TestNearestPolicyStopsForRiderDestination(t *testing.T) {
	b := testBuilding(t, 6, 1)
	car := b.Cars[0]
	car.Floor = 3
	car.Stopped = false
	car.Dir = types.DirUp
	car.Group = sim.Group{&sim.Occupant{Riding: true, Floor: 3, Dest: 3}}

	(&NearestPolicy{}).Dispatch(b, &scriptSource{})
	if !car.Stopped || car.Floor != 3 {
		t.Errorf("Expected moving car to stop for a rider's destination, got %+v", car)
	}
}

func TestCheapestPolicyPicksCheaperDirection(t *testing.T) {
	b := testBuilding(t, 6, 1)
	car := b.Cars[0]
	car.Floor = 2
	b.Floors[0].Group = sim.Group{&sim.Occupant{Floor: 0, Dest: 4}}
	b.Floors[4].Group = sim.Group{&sim.Occupant{Floor: 4, Dest: 0}}

	// Equidistant demand: moving down costs 2.5 per floor against 5.0 up.
	(&CheapestPolicy{}).Dispatch(b, &scriptSource{})
	if car.Stopped || car.Dir != types.DirDown {
		t.Errorf("Expected car to pick the cheaper downward trip, got %+v", car)
	}
}

func TestProjectedEnergy(t *testing.T) {
	car := sim.NewCar(5.0, 2.5, 0.5)
	car.Group = sim.Group{
		&sim.Occupant{Riding: true, Dest: 2},
		&sim.Occupant{Riding: true, Dest: 2},
	}

	if got := projectedEnergy(car, 2); got != 12.0 {
		t.Errorf("Expected 2 floors * (5.0 + 0.5*2) = 12.0, got %g", got)
	}
	if car.Floor != 0 || !car.Stopped {
		t.Errorf("Expected the real car untouched, got %+v", car)
	}
	if got := projectedEnergy(car, 0); got != 0 {
		t.Errorf("Expected 0 energy for zero distance, got %g", got)
	}
}

// Seeded single-arrival run: one occupant arrives at step 0 destined for
// floor 3, boards the nearest-policy car and is delivered without waiting.
func TestNearestPolicyDeliversArrival(t *testing.T) {
	b := testBuilding(t, 4, 1)
	ctrl := &NearestPolicy{}
	src := &scriptSource{
		floats: []float64{0.1, 0.9}, // one arrival, then none
		ints:   []int{3},
	}

	// Step 0 boards and launches; three advances; a forced stop at the
	// top; the final exchange alights.
	for step := 0; step < 5; step++ {
		b.Step(ctrl, src)
	}

	f := b.Floors[3]
	if f.Count() != 1 {
		t.Fatalf("Expected the occupant delivered to floor 3, got %d occupants", f.Count())
	}
	o := f.Group[0]
	if o.Riding || o.Floor != 3 || o.WaitTime != 0 {
		t.Errorf("Expected riding=false floor=3 waitTime=0, got %+v", o)
	}
	if b.AvgWaitTime() != 0 {
		t.Errorf("Expected zero average wait for an instant pickup, got %g", b.AvgWaitTime())
	}
}

// Two-car assignment: the car already standing with the waiting occupant
// serves it; the far car holds.
func TestNearestPolicyTwoCars(t *testing.T) {
	b := testBuilding(t, 6, 2)
	carA, carB := b.Cars[0], b.Cars[1]
	carB.Floor = 5
	b.Floors[0].Group = sim.Group{&sim.Occupant{Floor: 0, Dest: 2}}

	src := &scriptSource{floats: []float64{0.5}} // zero Poisson arrivals
	b.Step(&NearestPolicy{}, src)

	if carA.Stopped || carA.Dir != types.DirUp || carA.Floor != 1 {
		t.Errorf("Expected car A moving up with its passenger, got %+v", carA)
	}
	if carA.Count() != 1 {
		t.Errorf("Expected the occupant aboard car A, got %d", carA.Count())
	}
	if !carB.Stopped || carB.Floor != 5 {
		t.Errorf("Expected car B to hold at floor 5, got %+v", carB)
	}
}

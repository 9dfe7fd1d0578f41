package types

// Direction of car travel. Meaningful only while a car is moving.
type Direction int

const (
	DirDown Direction = -1
	DirUp   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// FloorStatus is the per-floor slice of a step snapshot.
type FloorStatus struct {
	Index           int
	Occupants       int
	Waiting         bool
	DestinationProb float64
}

// CarStatus is the per-car slice of a step snapshot.
type CarStatus struct {
	Floor     int
	Occupants int
	Stopped   bool
	Direction Direction
}

// Snapshot is the plain per-step state handed to the renderer. The core
// produces data only; formatting lives outside the simulation.
type Snapshot struct {
	Step        int
	Floors      []FloorStatus
	Cars        []CarStatus
	AvgWaitTime float64
	AvgEnergy   float64
}

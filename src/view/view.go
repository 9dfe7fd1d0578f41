// Terminal rendering of step snapshots. The simulation core produces plain
// data; everything visual lives here.
package view

import (
	"fmt"
	"io"
	"strings"

	"liftsim/src/types"
)

const carGap = "   \t "

// Clear wipes the screen and homes the cursor so the next frame overdraws.
func Clear(w io.Writer) {
	fmt.Fprint(w, "\033[2J\033[H")
}

// Render draws the building floors top-down, each with its destination
// probability and occupant count, cars boxed beside the floor they are on,
// and the running averages underneath.
func Render(w io.Writer, snap types.Snapshot) {
	var sb strings.Builder

	for i := len(snap.Floors) - 1; i >= 0; i-- {
		f := snap.Floors[i]
		roof := "----\t||---\t||"
		body := fmt.Sprintf("%.2f\t||%d\t||", f.DestinationProb, f.Occupants)
		if f.Waiting {
			roof += " *"
		}

		gap := 0
		for _, car := range snap.Cars {
			if car.Floor != f.Index {
				gap++
				continue
			}
			roof += strings.Repeat(carGap, gap) + "|-\t|"
			body += strings.Repeat(carGap, gap) + fmt.Sprintf("|%d\t|", car.Occupants)
			gap = 0
		}

		sb.WriteString(roof)
		sb.WriteByte('\n')
		sb.WriteString(body)
		sb.WriteByte('\n')
	}

	fmt.Fprintf(w, "%sstep %d\naverage wait time:\t%.2f\naverage energy spent:\t%.2f\n",
		sb.String(), snap.Step, snap.AvgWaitTime, snap.AvgEnergy)
}

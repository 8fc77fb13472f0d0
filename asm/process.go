package asm

import (
	"regexp"
	"slices"
	"strings"

	"github.com/ezrec/avalanche/internal"
)

const (
	SEQUENCE_DEPTH = 511 // Entries available in the hardware sequence table.
	PROCESS_MIN    = 7   // Fewest processes a program may declare.
)

var processNamePattern = regexp.MustCompile(`^[_a-zA-Z]+[_a-zA-Z0-9]*(\.[_a-zA-Z]+[_a-zA-Z0-9]*)?$`)

// Slot is one schedulable entry of a process.
type Slot struct {
	Name     string // Sub-process name, or the process name if not split.
	Location int    // Program address of the slot.
}

// Process is a top-level process with one or more slots.
// A split process ("top.sub") has a slot for every sub-process.
type Process struct {
	Name  string
	Split bool
	Slots []Slot
}

// ProcessRegistry holds all processes in the order they were declared.
type ProcessRegistry struct {
	processes []*Process
}

// splitProcessName splits "top.sub" into its parts.
func splitProcessName(name string) (top string, sub string, split bool) {
	top, sub, split = strings.Cut(name, ".")
	return
}

func (pr *ProcessRegistry) find(top string) *Process {
	for _, proc := range pr.processes {
		if proc.Name == top {
			return proc
		}
	}
	return nil
}

// Register adds a process, or a sub-process of a split process, starting
// at the given program address.
func (pr *ProcessRegistry) Register(name string, location int) (err error) {
	top, sub, split := splitProcessName(name)

	proc := pr.find(top)
	if proc == nil {
		proc = &Process{Name: top, Split: split}
		if !split {
			sub = top
		}
		proc.Slots = append(proc.Slots, Slot{Name: sub, Location: location})
		pr.processes = append(pr.processes, proc)
		return
	}

	if !split || !proc.Split {
		err = &ErrToken{Text: name, Err: ErrDuplicateProcess}
		return
	}

	for _, slot := range proc.Slots {
		if slot.Name == sub {
			err = &ErrToken{Text: name, Err: ErrDuplicateProcess}
			return
		}
	}

	proc.Slots = append(proc.Slots, Slot{Name: sub, Location: location})
	return
}

// Count is the number of top-level processes.
func (pr *ProcessRegistry) Count() int {
	return len(pr.processes)
}

// Processes returns the registered processes, in declaration order.
func (pr *ProcessRegistry) Processes() []*Process {
	return slices.Clone(pr.processes)
}

// Finalize orders the slots of each process by program address.
func (pr *ProcessRegistry) Finalize() {
	for _, proc := range pr.processes {
		slices.SortStableFunc(proc.Slots, func(a, b Slot) int {
			return a.Location - b.Location
		})
	}
}

// CycleLength is the number of steps before the schedule repeats.
func (pr *ProcessRegistry) CycleLength() int {
	counts := make([]int, 0, len(pr.processes))
	for _, proc := range pr.processes {
		counts = append(counts, len(proc.Slots))
	}
	return internal.Lcm(counts...)
}

// CheckCapacity verifies that the schedule fits the sequence table.
func (pr *ProcessRegistry) CheckCapacity() (err error) {
	size := pr.Count() * pr.CycleLength()
	if size > SEQUENCE_DEPTH {
		err = &ErrLimit{Value: size, Limit: SEQUENCE_DEPTH, Err: ErrSequenceCapacity}
	}
	return
}

// Starts lists every slot start address, grouped by process.
func (pr *ProcessRegistry) Starts() (starts []int) {
	for _, proc := range pr.processes {
		for _, slot := range proc.Slots {
			starts = append(starts, slot.Location)
		}
	}
	return
}

// Sequence returns the round-robin schedule: for every step of the cycle,
// the next slot of each process.
func (pr *ProcessRegistry) Sequence() (seq []int) {
	cycle := pr.CycleLength()
	for step := range cycle {
		for _, proc := range pr.processes {
			seq = append(seq, proc.Slots[step%len(proc.Slots)].Location)
		}
	}
	return
}

func (pr *ProcessRegistry) reset() {
	pr.processes = pr.processes[:0]
}

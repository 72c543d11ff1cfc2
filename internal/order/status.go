package order

import (
	"fmt"
	"strings"
)

var chain = []Status{StatusProcessing, StatusShipped, StatusDelivered}

// ParseStatus accepts a status name in any letter case.
func ParseStatus(s string) (Status, error) {
	for _, st := range chain {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Step is the 1-based position of s in the delivery chain, 0 for anything else.
func Step(s Status) int {
	for i, st := range chain {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// StepRow is one node of the tracking stepper.
type StepRow struct {
	Status    Status
	Completed bool
	Current   bool
}

func Steps(current Status) []StepRow {
	cur := Step(current)
	rows := make([]StepRow, len(chain))
	for i, st := range chain {
		rows[i] = StepRow{
			Status:    st,
			Completed: i+1 <= cur,
			Current:   i+1 == cur,
		}
	}
	return rows
}

// Progress is the filled share of the stepper bar in percent.
func Progress(s Status) int {
	switch Step(s) {
	case 2:
		return 50
	case 3:
		return 100
	}
	return 0
}

// CanTransition reports whether an order may move from one status to another.
// Moves go forward only, skipping is allowed and Delivered is final.
func CanTransition(from, to Status) bool {
	f, t := Step(from), Step(to)
	if t == 0 {
		return false
	}
	if f == 0 {
		return true
	}
	return t > f
}

// Terminal reports whether no further status change is offered.
func Terminal(s Status) bool { return s == StatusDelivered }

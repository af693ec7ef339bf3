package availability

import (
	"cmp"
	"slices"

	"hotel-availability/internal/domain/calendar"

	"github.com/google/uuid"
)

type Decision struct {
	Date      calendar.Date
	Requested int
	Booked    int
	Outcome   Outcome
	// Selected holds the bookings to cancel for OutcomeCancelAndApply, and the
	// bookings that would be cancelled for OutcomeConflict.
	Selected []Candidate
}

func (d Decision) Excess() int {
	return max(d.Booked-d.Requested, 0)
}

func (d Decision) CancelledRooms() int {
	return sumRooms(d.Selected)
}

// Reconcile classifies a single-date update against the bookings occupying that date.
// It does not mutate anything; the same inputs always yield the same decision.
func Reconcile(date calendar.Date, requested int, candidates []Candidate, force bool) (Decision, error) {
	if date.IsZero() {
		return Decision{}, ErrInvalidDate
	}
	if requested < 0 {
		return Decision{}, ErrNegativeAvailability
	}

	d := Decision{
		Date:      date,
		Requested: requested,
		Booked:    sumRooms(candidates),
		Outcome:   OutcomeApply,
	}
	if d.Booked <= requested {
		return d, nil
	}

	d.Selected = SelectForCancellation(candidates, d.Excess())
	if force {
		d.Outcome = OutcomeCancelAndApply
	} else {
		d.Outcome = OutcomeConflict
	}
	return d, nil
}

// SelectForCancellation picks the fewest bookings whose rooms cover excess.
// Larger bookings go first; ties are broken by creation time, then id.
func SelectForCancellation(candidates []Candidate, excess int) []Candidate {
	if excess <= 0 || len(candidates) == 0 {
		return nil
	}

	sorted := slices.Clone(candidates)
	slices.SortFunc(sorted, compareCandidates)

	var (
		selected []Candidate
		freed    int
	)
	for _, c := range sorted {
		if freed >= excess {
			break
		}
		selected = append(selected, c)
		freed += c.Rooms
	}
	return selected
}

func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(b.Rooms, a.Rooms); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.BookingID.String(), b.BookingID.String())
}

func sumRooms(cs []Candidate) int {
	total := 0
	for _, c := range cs {
		total += c.Rooms
	}
	return total
}

// Batch is the evaluation of a whole update request.
type Batch struct {
	Decisions []Decision
	Conflicts []Decision
}

func (b Batch) HasConflict() bool {
	return len(b.Conflicts) > 0
}

// FirstConflict is the conflict for the earliest date, if any.
func (b Batch) FirstConflict() (Decision, bool) {
	if len(b.Conflicts) == 0 {
		return Decision{}, false
	}
	return b.Conflicts[0], true
}

// Cancellations lists every booking selected across all dates, each once.
func (b Batch) Cancellations() []uuid.UUID {
	var ids []uuid.UUID
	for _, d := range b.Decisions {
		if d.Outcome != OutcomeCancelAndApply {
			continue
		}
		for _, c := range d.Selected {
			ids = append(ids, c.BookingID)
		}
	}
	return ids
}

// SortUpdates validates an update request and returns it in ascending date order.
func SortUpdates(updates []Update) ([]Update, error) {
	if len(updates) == 0 {
		return nil, ErrNoUpdates
	}
	if len(updates) > MaxUpdatesPerRequest {
		return nil, ErrTooManyUpdates
	}

	sorted := slices.Clone(updates)
	slices.SortFunc(sorted, func(a, b Update) int { return a.Date.Compare(b.Date) })

	for i, u := range sorted {
		if u.Date.IsZero() {
			return nil, ErrInvalidDate
		}
		if u.AvailableRooms < 0 {
			return nil, ErrNegativeAvailability
		}
		if i > 0 && sorted[i-1].Date.Equal(u.Date) {
			return nil, ErrDuplicateDate
		}
	}
	return sorted, nil
}

// ReconcileBatch evaluates updates in ascending date order. candidates maps a
// date (calendar.Date.String()) to the active bookings on it before any change.
// Under force, a booking cancelled for an earlier date no longer counts for later
// dates, so the same multi-night booking is never selected twice.
func ReconcileBatch(updates []Update, candidates map[string][]Candidate, force bool) (Batch, error) {
	sorted, err := SortUpdates(updates)
	if err != nil {
		return Batch{}, err
	}

	cancelled := make(map[uuid.UUID]struct{})
	batch := Batch{Decisions: make([]Decision, 0, len(sorted))}

	for _, u := range sorted {
		remaining := make([]Candidate, 0, len(candidates[u.Date.String()]))
		for _, c := range candidates[u.Date.String()] {
			if _, gone := cancelled[c.BookingID]; !gone {
				remaining = append(remaining, c)
			}
		}

		d, err := Reconcile(u.Date, u.AvailableRooms, remaining, force)
		if err != nil {
			return Batch{}, err
		}
		switch d.Outcome {
		case OutcomeConflict:
			batch.Conflicts = append(batch.Conflicts, d)
		case OutcomeCancelAndApply:
			for _, c := range d.Selected {
				cancelled[c.BookingID] = struct{}{}
			}
		}
		batch.Decisions = append(batch.Decisions, d)
	}
	return batch, nil
}

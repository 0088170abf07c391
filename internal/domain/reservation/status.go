package reservation

import "slices"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// transitions is the only place allowed moves are declared.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(transitions[s], to)
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Blocks reports whether a reservation in this status holds its nights against new bookings.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Occupies reports whether the nights show as taken on the calendar.
func (s Status) Occupies() bool {
	return s.Blocks() || s == StatusCompleted
}

// SourceStates lists every status that may move to `to`, in declaration order.
func SourceStates(to Status) []Status {
	var out []Status
	for _, from := range []Status{StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted} {
		if from.CanTransitionTo(to) {
			out = append(out, from)
		}
	}
	return out
}

func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func OccupyingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted}
}

func Strings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

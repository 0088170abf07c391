package listing

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusPending   Status = "pending"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusSuspended:
		return true
	default:
		return false
	}
}

func (s Status) IsBookable() bool {
	return s == StatusActive
}

// HostSettable reports whether a host may move the listing into this status.
// suspended is reserved for admins.
func (s Status) HostSettable() bool {
	return s == StatusActive || s == StatusInactive
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

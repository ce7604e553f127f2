package session

// Phase represents where a match is in its lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// EndReason tells why a match ended
type EndReason int

const (
	EndTimeExpired EndReason = iota
	EndLivesDepleted
)

// String returns the string representation of the end reason
func (r EndReason) String() string {
	switch r {
	case EndTimeExpired:
		return "TimeExpired"
	case EndLivesDepleted:
		return "LivesDepleted"
	default:
		return "Unknown"
	}
}

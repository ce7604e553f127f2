package replay

import "github.com/younwookim/crystalblade/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	JP bool `json:"jp,omitempty"` // JumpPressed
	AT bool `json:"at,omitempty"` // AttackPressed
	SP bool `json:"sp,omitempty"` // SpecialPressed
	PS bool `json:"ps,omitempty"` // PausePressed
	RT bool `json:"rt,omitempty"` // RetryPressed
	BK bool `json:"bk,omitempty"` // BackPressed
}

// ReplayData contains all data needed to replay a match
type ReplayData struct {
	Version   string       `json:"version"`
	MatchID   string       `json:"matchId"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrame captures the recordable part of one frame's input
func NewFrame(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		JP: in.JumpPressed,
		AT: in.AttackPressed,
		SP: in.SpecialPressed,
		PS: in.PausePressed,
		RT: in.RetryPressed,
		BK: in.BackPressed,
	}
}

// Input converts a recorded frame back into input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:           fi.L,
		Right:          fi.R,
		JumpPressed:    fi.JP,
		AttackPressed:  fi.AT,
		SpecialPressed: fi.SP,
		PausePressed:   fi.PS,
		RetryPressed:   fi.RT,
		BackPressed:    fi.BK,
	}
}

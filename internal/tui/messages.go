package tui

import "github.com/vito/progrock"

// MsgTapeUpdate wraps one update from the tape.
type MsgTapeUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgTapeEnded is sent when the tape has been closed.
type MsgTapeEnded struct{}

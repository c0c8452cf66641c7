// Package storedefs contains definitions used by the store package.
//
// It is a separate package so that packages that only depend on the store
// interface does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is returned when a matching command cannot be found in the
// history.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Store is an interface for the command history storage backend.
type Store interface {
	// NextCmdSeq returns the next sequence number of the command history.
	NextCmdSeq() (int, error)
	// AddCmd adds a new command to the command history and returns its
	// sequence number.
	AddCmd(text string) (int, error)
	// DelCmd deletes the command history item with the given sequence number.
	DelCmd(seq int) error
	// Cmd queries the command history item with the given sequence number.
	Cmd(seq int) (string, error)
	// CmdsWithSeq returns all commands within the seq range [from, upto).
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	// PrevCmd finds the last command before the given sequence number
	// (exclusive) with the given prefix.
	PrevCmd(upto int, prefix string) (Cmd, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}

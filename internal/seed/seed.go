// Package seed holds the Rooms reference dataset written into a fresh database.
//
// The dataset is an embedded CUE file. Every entry is unified with the #Room
// definition, so a malformed entry (empty room number, floor below 1, unknown
// field) fails at load time instead of at insert time.
package seed

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed rooms.cue
var roomsCUE string

// Room is one row of reference data.
type Room struct {
	Number      string `json:"room_number"`
	Building    string `json:"building"`
	Floor       int    `json:"floor"`
	Purpose     string `json:"purpose,omitempty"`
	Responsible string `json:"responsible,omitempty"`
}

// Error reports an invalid dataset, with the CUE position when known.
type Error struct {
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// Rooms returns the built-in dataset.
func Rooms() ([]Room, error) {
	return Parse("rooms.cue", roomsCUE)
}

// Parse compiles src and returns its validated "rooms" list.
func Parse(filename, src string) ([]Room, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	list := v.LookupPath(cue.ParsePath("rooms"))
	if !list.Exists() {
		return nil, &Error{Message: "rooms list not defined", Pos: v.Pos()}
	}
	if err := list.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var rooms []Room
	if err := list.Decode(&rooms); err != nil {
		return nil, formatCUEError(err)
	}

	seen := make(map[string]bool, len(rooms))
	for i, r := range rooms {
		if seen[r.Number] {
			return nil, &Error{Message: fmt.Sprintf("rooms[%d]: duplicate room_number %q", i, r.Number), Pos: list.Pos()}
		}
		seen[r.Number] = true
	}

	return rooms, nil
}

func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		return &Error{Message: first.Error(), Pos: positions[0]}
	}
	return &Error{Message: first.Error()}
}

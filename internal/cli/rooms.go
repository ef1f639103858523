package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var roomHeaders = []string{"NUMBER", "BUILDING", "FLOOR", "PURPOSE", "RESPONSIBLE"}

// NewRoomsCommand creates the rooms command.
func NewRoomsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rooms",
		Short:         "List the school's rooms",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRooms(rootOpts, cmd)
		},
	}
}

func runRooms(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	rooms, err := s.svc.Rooms(cmd.Context())
	if err != nil {
		return s.out.Fail("cannot list rooms", err)
	}

	if s.out.Format == "json" {
		return s.out.Success(rooms)
	}

	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []string{r.Number, r.Building, strconv.Itoa(r.Floor), r.Purpose, r.Responsible})
	}
	return s.out.Table(roomHeaders, rows)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InitResult is the JSON payload of the init command.
type InitResult struct {
	Database string `json:"database"`
	Rooms    int    `json:"rooms"`
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database and seed the room list",
		Long: `Create the database file and any missing tables.

The room list is seeded the first time the Rooms table is created. Running
init against an existing database changes nothing.

Example:
  inventory init --db ./data/school.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	numbers, err := s.svc.RoomNumbers(cmd.Context())
	if err != nil {
		return s.out.Fail("cannot list rooms", err)
	}

	result := InitResult{Database: s.cfg.Database, Rooms: len(numbers)}
	if s.out.Format == "json" {
		return s.out.Success(result)
	}
	return s.out.Success(fmt.Sprintf("Database ready: %s (%d rooms)", result.Database, result.Rooms))
}

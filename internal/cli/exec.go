package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <script.sql>",
		Short: "Run a SQL script against the database",
		Long: `Read a file of SQL statements and execute it against the database,
for example to bulk-load equipment. Statements run in order; a failing
statement stops the script and earlier statements are kept.

Example:
  inventory exec ./load.sql`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(rootOpts, args[0], cmd)
		},
	}
}

func runExec(opts *RootOptions, path string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.ExecScript(cmd.Context(), path); err != nil {
		return s.out.Fail(fmt.Sprintf("script %s failed", path), err)
	}

	if s.out.Format == "json" {
		return s.out.Success(map[string]string{"script": path})
	}
	return s.out.Success(fmt.Sprintf("Executed %s", path))
}

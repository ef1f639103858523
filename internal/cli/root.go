package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/chebotarevdmitr/school-inventory/internal/service"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	ConfigPath string
	Database   string
	LogFile    string
	LogLevel   string

	// IDGenerator overrides the operation ID generator (for testing).
	// If nil, the service defaults to UUIDv7.
	IDGenerator service.IDGenerator

	// Clock overrides the audit log clock (for testing).
	Clock func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// DefaultConfigPath is read when --config is not given. A missing file is fine.
const DefaultConfigPath = "inventory.yaml"

// NewRootCommand creates the root command for the inventory CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "School equipment inventory",
		Long: `Keep track of school equipment in a local SQLite database.

Every command opens the database, creates any missing tables (seeding the
room list on first use), performs its operation and records an audit trail
in the log file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				msg := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", msg)
				return NewExitError(ExitCommandError, msg)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.ConfigPath, "config", DefaultConfigPath, "path to YAML config file")
	flags.StringVar(&opts.Database, "db", "", "path to SQLite database (overrides config)")
	flags.StringVar(&opts.LogFile, "log", "", "path to audit log file (overrides config)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "minimum audit level: info|warning|error (overrides config)")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewRoomsCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))

	return cmd
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

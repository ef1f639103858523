package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tag>",
		Short: "Delete an asset",
		Long: `Delete the asset with the given tag. Its id is never reused.

Example:
  inventory remove INV-001`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}
}

func runRemove(opts *RootOptions, tag string, cmd *cobra.Command) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return newFormatter(opts, cmd).Reject("tag must not be empty")
	}

	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.svc.Remove(cmd.Context(), tag); err != nil {
		return s.out.Fail(fmt.Sprintf("cannot remove asset %s", tag), err)
	}

	if s.out.Format == "json" {
		return s.out.Success(map[string]string{"inventory_tag": tag})
	}
	return s.out.Success(fmt.Sprintf("Removed %s", tag))
}

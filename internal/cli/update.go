package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	Quantity  int
	Location  string
	Custodian string
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update <tag>",
		Short: "Change quantity, location and custodian of an asset",
		Long: `Replace the quantity, location and custodian of the asset with the given tag.
Name and tag never change.

Example:
  inventory update INV-001 --quantity 7 --location 204 --custodian "Petrov P.P."`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Quantity, "quantity", 0, "new number of units, greater than zero (required)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "new location (required)")
	cmd.Flags().StringVar(&opts.Custodian, "custodian", "", "new custodian (required)")
	for _, name := range []string{"quantity", "location", "custodian"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runUpdate(opts *UpdateOptions, tag string, cmd *cobra.Command) error {
	tag = strings.TrimSpace(tag)
	location := strings.TrimSpace(opts.Location)
	custodian := strings.TrimSpace(opts.Custodian)

	out := newFormatter(opts.RootOptions, cmd)
	switch {
	case tag == "":
		return out.Reject("tag must not be empty")
	case opts.Quantity <= 0:
		return out.Reject(fmt.Sprintf("quantity must be greater than zero, got %d", opts.Quantity))
	case location == "":
		return out.Reject("location must not be empty")
	case custodian == "":
		return out.Reject("custodian must not be empty")
	}

	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.svc.Update(cmd.Context(), tag, opts.Quantity, location, custodian); err != nil {
		return s.out.Fail(fmt.Sprintf("cannot update asset %s", tag), err)
	}

	if s.out.Format == "json" {
		return s.out.Success(map[string]any{
			"inventory_tag": tag,
			"quantity":      opts.Quantity,
			"location":      location,
			"custodian":     custodian,
		})
	}
	return s.out.Success(fmt.Sprintf("Updated %s", tag))
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chebotarevdmitr/school-inventory/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Name      string
	Quantity  int
	Tag       string
	Location  string
	Custodian string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new asset",
		Long: `Register a new asset under a unique inventory tag.

Example:
  inventory add --name Desk --quantity 5 --tag INV-001 --location 101 --custodian "Ivanov I.I."`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "asset name (required)")
	cmd.Flags().IntVar(&opts.Quantity, "quantity", 0, "number of units, greater than zero (required)")
	cmd.Flags().StringVar(&opts.Tag, "tag", "", "unique inventory tag (required)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "room or place where the asset is kept (required)")
	cmd.Flags().StringVar(&opts.Custodian, "custodian", "", "person responsible for the asset (required)")
	for _, name := range []string{"name", "quantity", "tag", "location", "custodian"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	asset := store.Asset{
		Name:         strings.TrimSpace(opts.Name),
		Quantity:     opts.Quantity,
		InventoryTag: strings.TrimSpace(opts.Tag),
		Location:     strings.TrimSpace(opts.Location),
		Custodian:    strings.TrimSpace(opts.Custodian),
	}

	out := newFormatter(opts.RootOptions, cmd)
	if msg := checkAsset(asset); msg != "" {
		return out.Reject(msg)
	}

	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.svc.Add(cmd.Context(), asset)
	if err != nil {
		return s.out.Fail(fmt.Sprintf("cannot add asset %s", asset.InventoryTag), err)
	}
	asset.ID = id

	if s.out.Format == "json" {
		return s.out.Success(asset)
	}
	return s.out.Success(fmt.Sprintf("Added %s (%s) with id %d", asset.Name, asset.InventoryTag, id))
}

// checkAsset returns a message describing the first invalid field, or "".
func checkAsset(a store.Asset) string {
	switch {
	case a.Name == "":
		return "name must not be empty"
	case a.InventoryTag == "":
		return "tag must not be empty"
	case a.Quantity <= 0:
		return fmt.Sprintf("quantity must be greater than zero, got %d", a.Quantity)
	case a.Location == "":
		return "location must not be empty"
	case a.Custodian == "":
		return "custodian must not be empty"
	}
	return ""
}

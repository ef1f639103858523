package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chebotarevdmitr/school-inventory/internal/store"
)

// assetHeaders are the column titles for Asset.Fields.
var assetHeaders = []string{"NAME", "QUANTITY", "TAG", "LOCATION", "CUSTODIAN"}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "Find assets by name or location",
		Long: `List assets whose name or location contains the term.

Matching is case-sensitive and the term is taken literally: % and _ have no
special meaning. Without a term every asset is listed.

Example:
  inventory search Desk
  inventory search 101 --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			return runSearch(rootOpts, term, cmd)
		},
	}
}

func runSearch(opts *RootOptions, term string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	assets, err := s.svc.Search(cmd.Context(), term)
	if err != nil {
		return s.out.Fail("search failed", err)
	}

	if s.out.Format == "json" {
		return s.out.Success(assets)
	}
	if len(assets) == 0 {
		return s.out.Success(fmt.Sprintf("No assets match %q", term))
	}
	return s.out.Table(assetHeaders, assetRows(assets))
}

func assetRows(assets []store.Asset) [][]string {
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, a.Fields())
	}
	return rows
}

package setupdiff

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkoehlmann/pitbook-go/pkg/cmd/util"
	"github.com/pkoehlmann/pitbook-go/pkg/diff"
	setuprepos "github.com/pkoehlmann/pitbook-go/pkg/repository/setup"
	setuputil "github.com/pkoehlmann/pitbook-go/pkg/setup"
)

var showAll bool

func NewSetupDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setupdiff <setup-id-a> <setup-id-b>",
		Short: "compares two setup sheets field by field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDiff(cmd, args[0], args[1])
		},
	}
	cmd.Flags().BoolVar(&showAll, "all", false, "also show unchanged fields")
	return cmd
}

func showDiff(cmd *cobra.Command, idA, idB string) error {
	db, err := util.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	a, err := setuprepos.LoadByID(ctx, db, idA)
	if err != nil {
		return fmt.Errorf("load setup %s: %w", idA, err)
	}
	b, err := setuprepos.LoadByID(ctx, db, idB)
	if err != nil {
		return fmt.Errorf("load setup %s: %w", idB, err)
	}

	rows := diff.Objects(
		setuputil.Decompose(setuputil.Normalize(a)),
		setuputil.Decompose(setuputil.Normalize(b)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)  vs  %s (%s)\n\n",
		labelOrID(a.VersionLabel, a.ID), a.ID, labelOrID(b.VersionLabel, b.ID), b.ID)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tA\tB\tCHANGE")
	changed := 0
	for _, row := range rows {
		if row.Changed {
			changed++
		} else if !showAll {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Label, orDash(row.AValue), orDash(row.BValue), row.ChangeType)
	}
	tw.Flush()
	fmt.Fprintf(out, "\n%d field(s) changed\n", changed)
	return nil
}

func labelOrID(label, id string) string {
	if label == "" {
		return id
	}
	return label
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

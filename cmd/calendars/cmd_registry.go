package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	calendars "github.com/goliatone/go-calendars"
)

var errNotAccepted = errors.New("identifier not accepted")

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List calendar kinds with their identifiers and schema keys",
	Args:  cobra.NoArgs,
	RunE:  listKinds,
}

var acceptsCmd = &cobra.Command{
	Use:   "accepts <kind> <identifier>",
	Short: "Check whether a calendar kind accepts a BCP-47 calendar identifier",
	Long: `accepts exits with status 0 when the kind accepts the identifier and 1
otherwise. Identifiers are matched exactly: "islamic" is accepted only by
IslamicObservational even though every Islamic kind loads "islamic" data.`,
	Args: cobra.ExactArgs(2),
	RunE: checkAccepts,
}

func listKinds(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tIDENTIFIER\tSKELETON\tLENGTHS\tSYMBOLS")
	for _, entry := range calendars.Entries() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", entry.Kind, entry.Identifier, entry.Skeleton, entry.Lengths, entry.Symbols)
	}
	return w.Flush()
}

func checkAccepts(cmd *cobra.Command, args []string) error {
	kind, err := calendars.ParseKind(args[0])
	if err != nil {
		return err
	}
	identifier := args[1]

	accepted := calendars.Accepts(kind, identifier)
	currentLogger().Debug("Checked calendar identifier",
		zap.Stringer("kind", kind),
		zap.String("identifier", identifier),
		zap.Bool("accepted", accepted))

	if !accepted {
		return fmt.Errorf("%s: %w: %q", kind, errNotAccepted, identifier)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s accepts %q\n", kind, identifier)
	return nil
}

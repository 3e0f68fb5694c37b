package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/benkhawiya/internal/catalog"
	"github.com/ppiankov/benkhawiya/internal/model"
)

var principlesAspect string

// principlesCmd represents the principles command
var principlesCmd = &cobra.Command{
	Use:   "principles",
	Short: "List the 42 cosmic principles",
	Long: `List the principles in catalog order, optionally only one aspect's.

Example:
  benkhawiya principles
  benkhawiya principles --aspect temu`,
	Args: cobra.NoArgs,
	RunE: runPrinciples,
}

func init() {
	rootCmd.AddCommand(principlesCmd)
	principlesCmd.Flags().StringVar(&principlesAspect, "aspect", "", "only list this aspect (sewu, pelu, ruwa, temu)")
}

func runPrinciples(cmd *cobra.Command, args []string) error {
	list := catalog.All()
	if principlesAspect != "" {
		aspect, err := model.ParseAspect(principlesAspect)
		if err != nil {
			return err
		}
		list = catalog.ByAspect(aspect)
	}

	out := cmd.OutOrStdout()
	for _, p := range list {
		fmt.Fprintf(out, "%2d  %-5s %s: %s\n", p.ID, p.Aspect.Label(), p.Name, p.Meaning)
	}
	return nil
}

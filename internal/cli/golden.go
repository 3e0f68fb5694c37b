package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/benkhawiya/internal/app"
)

// goldenCmd represents the golden command
var goldenCmd = &cobra.Command{
	Use:   "golden <n>",
	Short: "Print the first n terms of the golden-ratio progression",
	Args:  cobra.ExactArgs(1),
	RunE:  runGolden,
}

func init() {
	rootCmd.AddCommand(goldenCmd)
}

func runGolden(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("n must be an integer, got %q", args[0])
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	responder, err := app.NewResponder(cfg)
	if err != nil {
		return err
	}

	terms, err := responder.GoldenProgression(n)
	if err != nil {
		return err
	}
	for i, t := range terms {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %.12g\n", i, t)
	}
	return nil
}

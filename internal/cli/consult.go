package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/benkhawiya/internal/app"
	"github.com/ppiankov/benkhawiya/internal/model"
)

var consultJSON bool

// consultCmd represents the consult command
var consultCmd = &cobra.Command{
	Use:   "consult <question>",
	Short: "Consult the council from the command line",
	Long: `Consult scores the question against each aspect's keywords and
answers with the primary aspect's principles.

Example:
  benkhawiya consult "How should we build trust and integrity?"
  benkhawiya consult --json what should we plan next`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConsult,
}

func init() {
	rootCmd.AddCommand(consultCmd)
	consultCmd.Flags().BoolVar(&consultJSON, "json", false, "print the full result as JSON")
}

func runConsult(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	responder, err := app.NewResponder(cfg)
	if err != nil {
		return err
	}

	result, err := responder.Consult(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if consultJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printConsultation(out, result)
	return nil
}

func printConsultation(w io.Writer, r *model.ConsultationResult) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  %s: %s\n", r.PrimaryAspect.Label(), r.Theme)
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "\n%s\n\n", r.ResponseText)

	fmt.Fprintf(w, "Scores:\n")
	for _, s := range r.Scores {
		keywords := "-"
		if len(s.Keywords) > 0 {
			keywords = strings.Join(s.Keywords, ", ")
		}
		fmt.Fprintf(w, "  %-5s %d  (%s)\n", s.Aspect.Label(), s.Score, keywords)
	}
	if r.Fallback {
		fmt.Fprintf(w, "  no keyword matched; %s answered as fallback\n", r.PrimaryAspect.Label())
	}
	fmt.Fprintf(w, "\n")
}

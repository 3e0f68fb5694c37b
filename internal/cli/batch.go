package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/benkhawiya/internal/app"
	"github.com/ppiankov/benkhawiya/internal/model"
	"github.com/ppiankov/benkhawiya/internal/worker"
)

var (
	concurrency  int
	outputPath   string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Consult the council on many questions from a file in parallel",
	Long: `Batch consults the council on every question in a file:
- One question per line; blank lines and # comments are skipped
- Duplicate questions are consulted once
- Questions are processed in parallel with a configurable worker count
- Results are written as JSON lines in input order

Example:
  benkhawiya batch questions.txt
  benkhawiya batch questions.txt --concurrency 8 --out answers.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputPath, "out", "", "write JSON lines to this file instead of stdout")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
}

// batchLine is one JSON line of batch output
type batchLine struct {
	Index    int                       `json:"index"`
	Question string                    `json:"question"`
	Result   *model.ConsultationResult `json:"result,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	responder, err := app.NewResponder(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Benkhawiya Batch Consultation\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	processor := worker.NewBatchProcessor(responder, concurrency)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output file: %w", closeErr)
			}
		}()
		out = f
	}

	success, failures, err := writeBatchResults(out, results)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d questions\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", success)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failures)
	if outputPath != "" {
		fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputPath)
	}
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// writeBatchResults encodes results as JSON lines and counts outcomes
func writeBatchResults(w io.Writer, results []*worker.ConsultResult) (success, failures int, err error) {
	enc := json.NewEncoder(w)
	for _, r := range results {
		line := batchLine{Index: r.Index, Question: r.Question, Result: r.Result}
		if r.Error != nil {
			failures++
			line.Result = nil
			line.Error = r.Error.Error()
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Question, r.Error)
		} else {
			success++
		}
		if err := enc.Encode(line); err != nil {
			return success, failures, fmt.Errorf("write result %d: %w", r.Index, err)
		}
	}
	return success, failures, nil
}

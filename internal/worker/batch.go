package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/benkhawiya/internal/model"
)

// Consulter answers a single council question
type Consulter interface {
	Consult(question string) (*model.ConsultationResult, error)
}

// ConsultJob represents one question in a batch
type ConsultJob struct {
	Index     int
	Question  string
	Consulter Consulter
}

// Execute executes the consultation
func (j *ConsultJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ConsultResult{Index: j.Index, Question: j.Question, Error: err}
	}
	result, err := j.Consulter.Consult(j.Question)
	return &ConsultResult{
		Index:    j.Index,
		Question: j.Question,
		Result:   result,
		Error:    err,
	}
}

// ConsultResult represents the result of a consultation job
type ConsultResult struct {
	Index    int
	Question string
	Result   *model.ConsultationResult
	Error    error
}

// GetError returns the error from the consultation
func (r *ConsultResult) GetError() error {
	return r.Error
}

// BatchProcessor consults many questions concurrently
type BatchProcessor struct {
	consulter   Consulter
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(consulter Consulter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		consulter:   consulter,
		concurrency: concurrency,
	}
}

// ProcessQuestions consults every question and returns results in input order.
// Questions not reached before ctx is done carry ctx's error.
func (b *BatchProcessor) ProcessQuestions(ctx context.Context, questions []string) []*ConsultResult {
	if len(questions) == 0 {
		return []*ConsultResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit from a separate goroutine so results are drained while queueing
	go func() {
		defer pool.Close()
		for i, q := range questions {
			if !pool.Submit(&ConsultJob{Index: i, Question: q, Consulter: b.consulter}) {
				return
			}
		}
	}()

	ordered := make([]*ConsultResult, len(questions))
	for r := range pool.Results() {
		cr := r.(*ConsultResult)
		ordered[cr.Index] = cr
	}

	for i, r := range ordered {
		if r == nil {
			err := ctx.Err()
			if err == nil {
				err = fmt.Errorf("question not processed")
			}
			ordered[i] = &ConsultResult{Index: i, Question: questions[i], Error: err}
		}
	}

	return ordered
}

// ProcessFile reads questions from a file and consults them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ConsultResult, error) {
	questions, err := ReadQuestionsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	return b.ProcessQuestions(ctx, questions), nil
}

// ReadQuestionsFromFile reads questions from a file (one per line)
func ReadQuestionsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadQuestions(file)
}

// ReadQuestions reads one question per line, skipping blanks, comments and duplicates
func ReadQuestions(r io.Reader) ([]string, error) {
	var questions []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			questions = append(questions, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan questions: %w", err)
	}

	return questions, nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/scopekey/internal/cache"
	"github.com/dshills/scopekey/internal/dashscope"
	"github.com/dshills/scopekey/internal/eval"
)

var (
	flagEvalFile string
	flagNoCache  bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Score a RAG answer against its ground truth",
	Long: `Eval reads a sample file ({"question", "answer", "ground_truth", "contexts"})
and scores it with the configured DashScope models: answer correctness,
context recall, and context precision. Requires a resolved configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagEvalFile == "" {
			return fmt.Errorf("--file is required")
		}
		sample, err := loadSample(flagEvalFile)
		if err != nil {
			return err
		}

		vc, err := cache.New(!flagNoCache, "", 86400)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		client, err := dashscope.NewFromEnv(dashscope.WithVectorCache(vc))
		if err != nil {
			exitCode = ExitIncomplete
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}

		scorer := eval.NewScorer(client, client)
		score, err := scorer.Score(cmd.Context(), sample)
		if err != nil {
			return fmt.Errorf("scoring sample: %w", err)
		}

		renderScore(os.Stdout, score)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVarP(&flagEvalFile, "file", "f", "", "path to the sample JSON file")
	evalCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "bypass the embedding cache")
}

func loadSample(path string) (eval.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return eval.Sample{}, fmt.Errorf("reading sample file: %w", err)
	}
	var sample eval.Sample
	if err := json.Unmarshal(data, &sample); err != nil {
		return eval.Sample{}, fmt.Errorf("parsing sample file: %w", err)
	}
	return sample, nil
}

func renderScore(w io.Writer, score eval.Score) {
	ew := &errWriter{w: w}
	ew.printf("%-20s %s\n", "Metric", "Score")
	ew.printf("%-20s %.4f\n", "answer_correctness", score.AnswerCorrectness)
	ew.printf("%-20s %.4f\n", "context_recall", score.ContextRecall)
	ew.printf("%-20s %.4f\n", "context_precision", score.ContextPrecision)
}

package eval

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Sample is one question/answer pair with its retrieved contexts.
type Sample struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	GroundTruth string   `json:"ground_truth"`
	Contexts    []string `json:"contexts"`
}

// Score holds the metric values for one sample.
type Score struct {
	AnswerCorrectness float64 `json:"answer_correctness"`
	ContextRecall     float64 `json:"context_recall"`
	ContextPrecision  float64 `json:"context_precision"`
}

// Embedder produces vector embeddings for texts.
type Embedder interface {
	EmbedMany(ctx context.Context, texts []string) ([][]float32, error)
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}

// Judge produces a factual-correctness verdict for an answer.
type Judge interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

const (
	defaultRelevanceThreshold = 0.7

	// Verdict and similarity weights for answer correctness.
	factualWeight  = 0.75
	semanticWeight = 0.25
)

const judgeSystemPrompt = `You grade the factual correctness of an answer against a ground truth. ` +
	`Respond with ONLY a single number between 0.0 and 1.0, where 1.0 means the answer states ` +
	`the same facts as the ground truth and 0.0 means it contradicts or misses them entirely.`

// Scorer evaluates samples using an embedding handle and a judge LLM.
type Scorer struct {
	Embedder Embedder
	Judge    Judge

	// RelevanceThreshold is the minimum similarity for a context to count as
	// relevant in the precision metric.
	RelevanceThreshold float64
}

// NewScorer creates a Scorer with the default relevance threshold.
func NewScorer(e Embedder, j Judge) *Scorer {
	return &Scorer{Embedder: e, Judge: j, RelevanceThreshold: defaultRelevanceThreshold}
}

// Score evaluates one sample. The embedding calls are batched into a single
// request covering the answer, the ground truth, its sentences, and every
// context.
func (s *Scorer) Score(ctx context.Context, sample Sample) (Score, error) {
	if err := validate(sample); err != nil {
		return Score{}, err
	}

	sentences := splitSentences(sample.GroundTruth)

	texts := make([]string, 0, 2+len(sentences)+len(sample.Contexts))
	texts = append(texts, sample.Answer, sample.GroundTruth)
	texts = append(texts, sentences...)
	texts = append(texts, sample.Contexts...)

	vectors, err := s.Embedder.EmbedMany(ctx, texts)
	if err != nil {
		return Score{}, fmt.Errorf("embedding sample: %w", err)
	}
	if len(vectors) != len(texts) {
		return Score{}, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(texts))
	}

	answerVec := vectors[0]
	truthVec := vectors[1]
	sentenceVecs := vectors[2 : 2+len(sentences)]
	contextVecs := vectors[2+len(sentences):]

	semantic := clamp01(cosine(answerVec, truthVec))
	factual := semantic
	if s.Judge != nil {
		reply, err := s.Judge.Chat(ctx, judgeSystemPrompt, judgeUserPrompt(sample))
		if err != nil {
			return Score{}, fmt.Errorf("judging answer: %w", err)
		}
		if verdict, ok := parseVerdict(reply); ok {
			factual = verdict
		}
	}

	return Score{
		AnswerCorrectness: factualWeight*factual + semanticWeight*semantic,
		ContextRecall:     recall(sentenceVecs, contextVecs),
		ContextPrecision:  s.precision(contextVecs, truthVec),
	}, nil
}

func validate(sample Sample) error {
	switch {
	case strings.TrimSpace(sample.Question) == "":
		return fmt.Errorf("sample has no question")
	case strings.TrimSpace(sample.Answer) == "":
		return fmt.Errorf("sample has no answer")
	case strings.TrimSpace(sample.GroundTruth) == "":
		return fmt.Errorf("sample has no ground truth")
	case len(sample.Contexts) == 0:
		return fmt.Errorf("sample has no contexts")
	}
	return nil
}

func judgeUserPrompt(sample Sample) string {
	var b strings.Builder
	b.WriteString("Question:\n")
	b.WriteString(sample.Question)
	b.WriteString("\n\nGround truth:\n")
	b.WriteString(sample.GroundTruth)
	b.WriteString("\n\nAnswer to grade:\n")
	b.WriteString(sample.Answer)
	return b.String()
}

// parseVerdict extracts the first parseable number from the judge's reply and
// clamps it into [0, 1].
func parseVerdict(reply string) (float64, bool) {
	for _, field := range strings.Fields(reply) {
		field = strings.Trim(field, ".,:;")
		if v, err := strconv.ParseFloat(field, 64); err == nil {
			return clamp01(v), true
		}
	}
	return 0, false
}

// recall is the mean, over ground-truth sentences, of the best similarity to
// any retrieved context.
func recall(sentenceVecs, contextVecs [][]float32) float64 {
	if len(sentenceVecs) == 0 || len(contextVecs) == 0 {
		return 0
	}
	var total float64
	for _, sv := range sentenceVecs {
		best := 0.0
		for _, cv := range contextVecs {
			if sim := clamp01(cosine(sv, cv)); sim > best {
				best = sim
			}
		}
		total += best
	}
	return total / float64(len(sentenceVecs))
}

// precision is the rank-weighted fraction of contexts relevant to the ground
// truth (mean precision at each relevant rank).
func (s *Scorer) precision(contextVecs [][]float32, truthVec []float32) float64 {
	threshold := s.RelevanceThreshold
	if threshold == 0 {
		threshold = defaultRelevanceThreshold
	}

	var sum float64
	relevant := 0
	for k, cv := range contextVecs {
		if clamp01(cosine(cv, truthVec)) >= threshold {
			relevant++
			sum += float64(relevant) / float64(k+1)
		}
	}
	if relevant == 0 {
		return 0
	}
	return sum / float64(relevant)
}

// splitSentences breaks text on sentence punctuation and newlines. A text
// with no terminators is treated as a single sentence.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	var sentences []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	if len(sentences) == 0 {
		return []string{text}
	}
	return sentences
}

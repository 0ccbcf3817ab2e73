// Package eval scores a retrieval-augmented answer against its ground truth.
//
// A [Scorer] combines two injected handles: an Embedder for vector
// similarity and a Judge LLM for factual grading. Three metrics are produced
// per sample:
//
//   - answer correctness — a blend of the judge's factual verdict and the
//     embedding similarity between answer and ground truth
//   - context recall     — how much of the ground truth is covered by the
//     retrieved contexts
//   - context precision  — how many retrieved contexts are relevant, weighted
//     toward early ranks
//
// All metrics are in [0, 1]. Scoring never panics; degenerate samples are
// rejected with an error before any API call is made.
package eval

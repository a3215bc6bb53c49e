// Package bow encodes text documents as bag-of-words count vectors.
//
// A Vectorizer learns a vocabulary of lowercased whitespace tokens, in the
// order each token is first seen, and counts occurrences per document:
//
//	v := bow.New()
//	m := v.FitTransform([]string{"b a", "a c"})
//	fmt.Println(v.FeatureNames()) // [b a c]
//	fmt.Println(m)                // [[1 1 0] [0 1 1]]
//	vec, _ := v.Transform("c c b")
//	fmt.Println(vec)              // [1 0 2]
//
// Tokens unseen during training are ignored by Transform unless the
// Vectorizer was built WithStrictVocabulary, in which case Transform fails
// with an error matching ErrOutOfVocabulary.
package bow

import (
	"fmt"
	"log/slog"

	"github.com/happyhackingspace/bow/internal/htmlutil"
	"github.com/happyhackingspace/bow/internal/storage"
	"github.com/happyhackingspace/bow/internal/textutil"
	"github.com/happyhackingspace/bow/internal/vectorizer"
)

// Vector holds token counts for one document, indexed by feature column.
type Vector = vectorizer.Vector

// Matrix holds one Vector per document.
type Matrix = vectorizer.Matrix

// OutOfVocabularyError names a token missing from a strict vocabulary.
type OutOfVocabularyError = vectorizer.OutOfVocabularyError

var (
	// ErrNotTrained is returned by Transform before any FitTransform call.
	ErrNotTrained = vectorizer.ErrNotTrained
	// ErrOutOfVocabulary is returned by a strict Vectorizer for unseen tokens.
	ErrOutOfVocabulary = vectorizer.ErrOutOfVocabulary
)

// Vectorizer owns one vocabulary. It is not safe for concurrent use.
type Vectorizer struct {
	cv *vectorizer.CountVectorizer
}

// Option configures a Vectorizer.
type Option func(*options)

type options struct {
	policy vectorizer.OOVPolicy
}

// WithStrictVocabulary makes Transform fail on tokens absent from the vocabulary.
func WithStrictVocabulary() Option {
	return func(o *options) { o.policy = vectorizer.OOVError }
}

// New creates a Vectorizer with an empty vocabulary.
func New(opts ...Option) *Vectorizer {
	o := options{policy: vectorizer.OOVIgnore}
	for _, opt := range opts {
		opt(&o)
	}
	return &Vectorizer{cv: vectorizer.NewCountVectorizer(o.policy)}
}

// Normalize splits document on whitespace and lowercases each token.
func Normalize(document string) []string {
	return textutil.Normalize(document)
}

// FitTransform learns a new vocabulary from corpus, replacing the previous
// one, and returns the count matrix with one row per document.
func (v *Vectorizer) FitTransform(corpus []string) Matrix {
	m := v.cv.FitTransform(corpus)
	slog.Debug("Vocabulary fitted", "documents", len(corpus), "features", v.cv.VocabSize())
	return m
}

// FitTransformHTML is FitTransform over the visible text of HTML pages.
func (v *Vectorizer) FitTransformHTML(pages []string) (Matrix, error) {
	corpus := make([]string, len(pages))
	for i, page := range pages {
		text, err := htmlutil.ExtractTextString(page)
		if err != nil {
			return nil, fmt.Errorf("bow: page %d: %w", i, err)
		}
		corpus[i] = text
	}
	return v.FitTransform(corpus), nil
}

// Transform encodes text against the current vocabulary.
func (v *Vectorizer) Transform(text string) (Vector, error) {
	vec, err := v.cv.Transform(text)
	if err != nil {
		return nil, fmt.Errorf("bow: %w", err)
	}
	return vec, nil
}

// TransformAll encodes every document of corpus against the current vocabulary.
func (v *Vectorizer) TransformAll(corpus []string) (Matrix, error) {
	m, err := v.cv.TransformAll(corpus)
	if err != nil {
		return nil, fmt.Errorf("bow: %w", err)
	}
	return m, nil
}

// Fit learns a new vocabulary from corpus without building the count matrix.
func (v *Vectorizer) Fit(corpus []string) {
	v.cv.Fit(corpus)
	slog.Debug("Vocabulary fitted", "documents", len(corpus), "features", v.cv.VocabSize())
}

// Trained reports whether a vocabulary was fitted, even an empty one.
func (v *Vectorizer) Trained() bool {
	return v.cv.Trained()
}

// FeatureNames returns the vocabulary tokens in column order.
// It is empty before training.
func (v *Vectorizer) FeatureNames() []string {
	return v.cv.FeatureNames()
}

// VocabSize returns the number of feature columns.
func (v *Vectorizer) VocabSize() int {
	return v.cv.VocabSize()
}

// Strict reports whether unseen tokens make Transform fail.
func (v *Vectorizer) Strict() bool {
	return v.cv.OOV == vectorizer.OOVError
}

// Save writes the vocabulary to a JSON model file.
func (v *Vectorizer) Save(path string) error {
	if err := storage.SaveJSON(path, v.cv); err != nil {
		return fmt.Errorf("bow: %w", err)
	}
	return nil
}

// Load reads a Vectorizer from a JSON model file written by Save.
func Load(path string) (*Vectorizer, error) {
	cv := vectorizer.NewCountVectorizer(vectorizer.OOVIgnore)
	if err := storage.LoadJSON(path, cv); err != nil {
		return nil, fmt.Errorf("bow: %w", err)
	}
	return &Vectorizer{cv: cv}, nil
}

// SetStrict switches the out-of-vocabulary policy of a loaded Vectorizer.
func (v *Vectorizer) SetStrict(strict bool) {
	if strict {
		v.cv.OOV = vectorizer.OOVError
		return
	}
	v.cv.OOV = vectorizer.OOVIgnore
}

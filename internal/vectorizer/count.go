package vectorizer

import (
	"encoding/json"
	"fmt"

	"github.com/happyhackingspace/bow/internal/textutil"
)

// OOVPolicy selects how Transform treats tokens missing from the vocabulary.
type OOVPolicy string

const (
	// OOVIgnore skips unknown tokens.
	OOVIgnore OOVPolicy = "ignore"
	// OOVError fails with an OutOfVocabularyError on the first unknown token.
	OOVError OOVPolicy = "error"
)

// CountVectorizer converts text to token count vectors.
//
// A CountVectorizer is not safe for concurrent use; Fit and FitTransform
// replace the vocabulary in place.
type CountVectorizer struct {
	Vocabulary *Vocabulary `json:"vocabulary"`
	OOV        OOVPolicy   `json:"oov"`
	Fitted     bool        `json:"fitted"`
}

// NewCountVectorizer creates an untrained CountVectorizer. An empty policy means OOVIgnore.
func NewCountVectorizer(policy OOVPolicy) *CountVectorizer {
	if policy == "" {
		policy = OOVIgnore
	}
	return &CountVectorizer{
		Vocabulary: NewVocabulary(),
		OOV:        policy,
	}
}

// Fit builds a fresh vocabulary from a corpus, discarding the previous one.
func (cv *CountVectorizer) Fit(corpus []string) {
	cv.fit(normalizeCorpus(corpus))
}

func (cv *CountVectorizer) fit(docs [][]string) {
	vocab := NewVocabulary()
	for _, tokens := range docs {
		for _, t := range tokens {
			vocab.Add(t)
		}
	}
	cv.Vocabulary = vocab
	cv.Fitted = true
}

// FitTransform fits the vocabulary and returns the count matrix of the corpus.
func (cv *CountVectorizer) FitTransform(corpus []string) Matrix {
	docs := normalizeCorpus(corpus)
	cv.fit(docs)

	m := NewMatrix(len(docs), cv.Vocabulary.Len())
	for i, tokens := range docs {
		for _, t := range tokens {
			idx, _ := cv.Vocabulary.Index(t)
			m[i][idx]++
		}
	}
	return m
}

// Transform converts a single document to a count vector against the fitted vocabulary.
func (cv *CountVectorizer) Transform(text string) (Vector, error) {
	if !cv.Fitted {
		return nil, ErrNotTrained
	}
	vec := make(Vector, cv.Vocabulary.Len())
	for _, t := range textutil.Normalize(text) {
		idx, ok := cv.Vocabulary.Index(t)
		if !ok {
			if cv.OOV == OOVError {
				return nil, &OutOfVocabularyError{Token: t}
			}
			continue
		}
		vec[idx]++
	}
	return vec, nil
}

// TransformAll converts every document of a corpus without refitting.
func (cv *CountVectorizer) TransformAll(corpus []string) (Matrix, error) {
	if !cv.Fitted {
		return nil, ErrNotTrained
	}
	m := make(Matrix, len(corpus))
	for i, doc := range corpus {
		vec, err := cv.Transform(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		m[i] = vec
	}
	return m, nil
}

// Trained reports whether a vocabulary was fitted or loaded.
func (cv *CountVectorizer) Trained() bool {
	return cv.Fitted
}

// FeatureNames returns the vocabulary tokens in column order.
func (cv *CountVectorizer) FeatureNames() []string {
	if cv.Vocabulary == nil {
		return []string{}
	}
	return cv.Vocabulary.Tokens()
}

// VocabSize returns the vocabulary size.
func (cv *CountVectorizer) VocabSize() int {
	if cv.Vocabulary == nil {
		return 0
	}
	return cv.Vocabulary.Len()
}

func normalizeCorpus(corpus []string) [][]string {
	docs := make([][]string, len(corpus))
	for i, doc := range corpus {
		docs[i] = textutil.Normalize(doc)
	}
	return docs
}

// MarshalJSON implements json.Marshaler.
func (cv *CountVectorizer) MarshalJSON() ([]byte, error) {
	type Alias CountVectorizer
	return json.Marshal((*Alias)(cv))
}

// UnmarshalJSON implements json.Unmarshaler.
func (cv *CountVectorizer) UnmarshalJSON(data []byte) error {
	type Alias CountVectorizer
	if err := json.Unmarshal(data, (*Alias)(cv)); err != nil {
		return err
	}
	if cv.Vocabulary == nil {
		cv.Vocabulary = NewVocabulary()
	}
	switch cv.OOV {
	case "":
		cv.OOV = OOVIgnore
	case OOVIgnore, OOVError:
	default:
		return fmt.Errorf("unknown oov policy %q", cv.OOV)
	}
	return nil
}

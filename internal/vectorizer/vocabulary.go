// Package vectorizer provides bag-of-words count encoding of text documents.
package vectorizer

import "encoding/json"

// Vocabulary maps tokens to column indices in first-seen order.
type Vocabulary struct {
	index  map[string]int
	tokens []string
}

// NewVocabulary creates an empty Vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

// Add assigns the next free index to token if it is unseen and returns its index.
func (v *Vocabulary) Add(token string) int {
	if idx, ok := v.index[token]; ok {
		return idx
	}
	if v.index == nil {
		v.index = make(map[string]int)
	}
	idx := len(v.tokens)
	v.index[token] = idx
	v.tokens = append(v.tokens, token)
	return idx
}

// Index returns the column index of token.
func (v *Vocabulary) Index(token string) (int, bool) {
	idx, ok := v.index[token]
	return idx, ok
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Tokens returns a copy of the tokens in index order.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// MarshalJSON encodes the vocabulary as its ordered token list.
func (v *Vocabulary) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Tokens())
}

// UnmarshalJSON rebuilds the vocabulary from an ordered token list.
// Duplicate tokens keep their first index, as during training.
func (v *Vocabulary) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	v.index = make(map[string]int, len(tokens))
	v.tokens = nil
	for _, t := range tokens {
		v.Add(t)
	}
	return nil
}

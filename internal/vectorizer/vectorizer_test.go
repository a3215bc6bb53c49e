package vectorizer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pastaCorpus = []string{
	"Crock Pot Pasta Never boil pasta again",
	"Pasta Pomodoro Fresh ingredients Parmesan to taste",
}

func TestVocabularyFirstSeenOrder(t *testing.T) {
	v := NewVocabulary()
	assert.Equal(t, 0, v.Add("b"))
	assert.Equal(t, 1, v.Add("a"))
	assert.Equal(t, 0, v.Add("b"))
	assert.Equal(t, 2, v.Add("c"))

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"b", "a", "c"}, v.Tokens())

	idx, ok := v.Index("c")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	_, ok = v.Index("missing")
	assert.False(t, ok)
}

func TestVocabularyZeroValue(t *testing.T) {
	var v Vocabulary
	assert.Equal(t, 0, v.Add("pasta"))
	assert.Equal(t, 1, v.Add("pot"))
	assert.Equal(t, 0, v.Add("pasta"))
	assert.Equal(t, []string{"pasta", "pot"}, v.Tokens())
}

func TestVocabularyTokensIsCopy(t *testing.T) {
	v := NewVocabulary()
	v.Add("x")
	tokens := v.Tokens()
	tokens[0] = "y"
	assert.Equal(t, []string{"x"}, v.Tokens())
}

func TestVocabularyJSON(t *testing.T) {
	v := NewVocabulary()
	for _, tok := range []string{"crock", "pot", "pasta"} {
		v.Add(tok)
	}
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `["crock","pot","pasta"]`, string(data))

	loaded := NewVocabulary()
	require.NoError(t, json.Unmarshal(data, loaded))
	assert.Equal(t, v.Tokens(), loaded.Tokens())
	idx, ok := loaded.Index("pasta")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestFitTransformPasta(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	m := cv.FitTransform(pastaCorpus)

	wantVocab := map[string]int{
		"crock": 0, "pot": 1, "pasta": 2, "never": 3, "boil": 4, "again": 5,
		"pomodoro": 6, "fresh": 7, "ingredients": 8, "parmesan": 9, "to": 10, "taste": 11,
	}
	for tok, want := range wantVocab {
		idx, ok := cv.Vocabulary.Index(tok)
		require.True(t, ok, "missing %q", tok)
		assert.Equal(t, want, idx, "index of %q", tok)
	}
	assert.Equal(t, len(wantVocab), cv.VocabSize())

	want := Matrix{
		{1, 1, 2, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	}
	assert.Equal(t, want, m)

	vec, err := cv.Transform("Pasta Pomodoro Fresh")
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 0}, vec)
}

func TestFitTransformShape(t *testing.T) {
	corpora := [][]string{
		{},
		{""},
		{"   "},
		{"b a", "a c"},
		{"one", "", "two two", "ONE Two three"},
	}
	for _, corpus := range corpora {
		cv := NewCountVectorizer("")
		m := cv.FitTransform(corpus)
		require.Len(t, m, len(corpus))
		for _, row := range m {
			assert.Len(t, row, len(cv.FeatureNames()))
		}
	}
}

func TestFitTransformColumnOrder(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	cv.FitTransform([]string{"b a", "a c"})
	assert.Equal(t, []string{"b", "a", "c"}, cv.FeatureNames())
}

func TestFitTransformBoundaries(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	m := cv.FitTransform([]string{})
	assert.Empty(t, m)
	assert.Empty(t, cv.FeatureNames())

	m = cv.FitTransform([]string{""})
	assert.Equal(t, Matrix{{}}, m)
	assert.Equal(t, 0, m.Cols())
}

func TestFitTransformReplacesVocabulary(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	cv.FitTransform(pastaCorpus)
	m := cv.FitTransform([]string{"zebra Pasta"})

	assert.Equal(t, []string{"zebra", "pasta"}, cv.FeatureNames())
	assert.Equal(t, Matrix{{1, 1}}, m)

	_, ok := cv.Vocabulary.Index("crock")
	assert.False(t, ok)
}

func TestFitTransformDeterministic(t *testing.T) {
	a := NewCountVectorizer(OOVIgnore)
	b := NewCountVectorizer(OOVIgnore)
	assert.Equal(t, a.FitTransform(pastaCorpus), b.FitTransform(pastaCorpus))
	assert.Equal(t, a.FeatureNames(), b.FeatureNames())
}

func TestFitTransformRowsAreIndependent(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	m := cv.FitTransform([]string{"a b", "b c"})
	m[0] = append(m[0], 99)
	assert.Equal(t, Vector{0, 1, 1}, m[1])
}

func TestFeatureNamesIdempotent(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	assert.Empty(t, cv.FeatureNames())

	cv.FitTransform(pastaCorpus)
	first := cv.FeatureNames()
	second := cv.FeatureNames()
	assert.Equal(t, first, second)

	first[0] = "mutated"
	assert.Equal(t, "crock", cv.FeatureNames()[0])
}

func TestTransformNotTrained(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	_, err := cv.Transform("pasta")
	assert.ErrorIs(t, err, ErrNotTrained)

	_, err = cv.TransformAll([]string{"pasta"})
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestTransformAfterEmptyFit(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	cv.FitTransform(nil)
	vec, err := cv.Transform("anything at all")
	require.NoError(t, err)
	assert.Empty(t, vec)
}

func TestTransformOOVIgnore(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	cv.FitTransform(pastaCorpus)

	vec, err := cv.Transform("spaghetti PASTA pasta carbonara")
	require.NoError(t, err)
	require.Len(t, vec, 12)
	assert.Equal(t, 2, vec[2])
	assert.Equal(t, 2, vec.Sum())
	assert.Equal(t, 1, vec.Nnz())
}

func TestTransformOOVError(t *testing.T) {
	cv := NewCountVectorizer(OOVError)
	cv.FitTransform(pastaCorpus)

	_, err := cv.Transform("Pasta Carbonara")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfVocabulary)

	var oov *OutOfVocabularyError
	require.True(t, errors.As(err, &oov))
	assert.Equal(t, "carbonara", oov.Token)

	vec, err := cv.Transform("pasta fresh")
	require.NoError(t, err)
	assert.Equal(t, 2, vec.Sum())
}

func TestTransformAll(t *testing.T) {
	cv := NewCountVectorizer(OOVError)
	cv.FitTransform(pastaCorpus)

	m, err := cv.TransformAll([]string{"pot", "to taste"})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 12, m.Cols())
	assert.Equal(t, 1, m[0][1])
	assert.Equal(t, 1, m[1][10])
	assert.Equal(t, 1, m[1][11])

	_, err = cv.TransformAll([]string{"pot", "lasagna"})
	assert.ErrorIs(t, err, ErrOutOfVocabulary)
	assert.Contains(t, err.Error(), "document 1")
}

func TestCountVectorizerJSON(t *testing.T) {
	cv := NewCountVectorizer(OOVError)
	want := cv.FitTransform(pastaCorpus)

	data, err := json.Marshal(cv)
	require.NoError(t, err)

	var loaded CountVectorizer
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, cv.FeatureNames(), loaded.FeatureNames())
	assert.Equal(t, OOVError, loaded.OOV)
	assert.True(t, loaded.Fitted)

	got, err := loaded.TransformAll(pastaCorpus)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCountVectorizerJSONDefaults(t *testing.T) {
	var loaded CountVectorizer
	require.NoError(t, json.Unmarshal([]byte(`{}`), &loaded))
	assert.Equal(t, OOVIgnore, loaded.OOV)
	assert.False(t, loaded.Fitted)
	assert.Empty(t, loaded.FeatureNames())

	err := json.Unmarshal([]byte(`{"oov":"explode"}`), &loaded)
	assert.Error(t, err)
}

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	m[0][2] = 5
	assert.Equal(t, Vector{0, 0, 0}, m[1])
}

func TestFit(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	assert.False(t, cv.Trained())

	cv.Fit(pastaCorpus)
	assert.True(t, cv.Trained())
	assert.Equal(t, 12, cv.VocabSize())

	cv.Fit([]string{"b a", "a c"})
	assert.Equal(t, []string{"b", "a", "c"}, cv.FeatureNames())
	_, ok := cv.Vocabulary.Index("crock")
	assert.False(t, ok)

	vec, err := cv.Transform("c a a")
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 2, 1}, vec)
}

func TestTrained(t *testing.T) {
	cv := NewCountVectorizer(OOVIgnore)
	assert.False(t, cv.Trained())
	cv.FitTransform(nil)
	assert.True(t, cv.Trained())
}

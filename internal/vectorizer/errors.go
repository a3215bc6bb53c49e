package vectorizer

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTrained is returned when encoding text before any vocabulary was fitted.
	ErrNotTrained = errors.New("vectorizer not trained")
	// ErrOutOfVocabulary is matched by every OutOfVocabularyError.
	ErrOutOfVocabulary = errors.New("token out of vocabulary")
)

// OutOfVocabularyError reports a token absent from the fitted vocabulary.
type OutOfVocabularyError struct {
	Token string
}

func (e *OutOfVocabularyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrOutOfVocabulary, e.Token)
}

// Is reports whether target is ErrOutOfVocabulary.
func (e *OutOfVocabularyError) Is(target error) bool {
	return target == ErrOutOfVocabulary
}

package decode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"MNEM2ENT/internal/wordlist"
)

var (
	ErrEmptyPhrase      = errors.New("empty mnemonic")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// UnknownWordError reports the first phrase token missing from the vocabulary.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word %q is not in the BIP39 word list", e.Word)
}

// InvalidWordCountError reports a token count outside 12, 15, 18, 21 and 24.
type InvalidWordCountError struct {
	Count int
}

func (e *InvalidWordCountError) Error() string {
	return fmt.Sprintf("unsupported word count: %d (expected 12, 15, 18, 21 or 24)", e.Count)
}

// DiagnosticKind orders the classifications a DiagnosticError can carry.
// Lower values win when several apply.
type DiagnosticKind int

const (
	DiagnosticUnknownWords DiagnosticKind = iota
	DiagnosticWordCount
	DiagnosticChecksum
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticUnknownWords:
		return "unknown-words"
	case DiagnosticWordCount:
		return "word-count"
	case DiagnosticChecksum:
		return "checksum"
	default:
		return "unknown"
	}
}

// DiagnosticError is a human-readable explanation of why a phrase could not be
// decoded. It unwraps to the underlying classified error.
type DiagnosticError struct {
	Kind      DiagnosticKind
	Words     []string
	Count     int
	Languages []wordlist.Language
}

func (e *DiagnosticError) Error() string {
	switch e.Kind {
	case DiagnosticUnknownWords:
		quoted := make([]string, len(e.Words))
		for i, w := range e.Words {
			quoted[i] = strconv.Quote(w)
		}
		return "invalid words: " + strings.Join(quoted, ", ") + " (not found in the " + e.languages() + " word list)"
	case DiagnosticWordCount:
		return fmt.Sprintf("invalid word count: %d (expected 12, 15, 18, 21 or 24)", e.Count)
	default:
		return "checksum does not match in any supported word list (" + e.languages() +
			"); the phrase may follow a different seed standard, lenient decoding can still recover its bits"
	}
}

// Unwrap exposes the classified error so errors.Is and errors.As see through the diagnostic.
func (e *DiagnosticError) Unwrap() error {
	switch e.Kind {
	case DiagnosticUnknownWords:
		if len(e.Words) > 0 {
			return &UnknownWordError{Word: e.Words[0]}
		}
		return nil
	case DiagnosticWordCount:
		return &InvalidWordCountError{Count: e.Count}
	default:
		return ErrChecksumMismatch
	}
}

func (e *DiagnosticError) languages() string {
	names := make([]string, len(e.Languages))
	for i, l := range e.Languages {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

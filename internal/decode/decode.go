package decode

import (
	"errors"
	"strings"

	"MNEM2ENT/internal/bitpack"
	"MNEM2ENT/internal/wordlist"
)

// Mode selects whether the embedded checksum is enforced.
type Mode int

const (
	// Strict validates the embedded checksum and returns ENT bits only.
	Strict Mode = iota
	// Lenient skips the checksum and returns every packed bit.
	Lenient
)

// String returns "strict" or "lenient".
func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// Config carries every per-run toggle. It is passed by value and never mutated
// after the CLI builds it.
type Config struct {
	Mode        Mode
	Format      Format
	SkipInvalid bool
	// Fallback retries a failed strict decode in lenient mode.
	Fallback bool
}

// entropyBytes maps a valid word count to its strict entropy length.
var entropyBytes = map[int]int{12: 16, 15: 20, 18: 24, 21: 28, 24: 32}

// Decoder turns mnemonic phrases back into entropy. It holds no mutable state.
type Decoder struct {
	index *wordlist.Index
}

// New returns a decoder resolving words through index.
func New(index *wordlist.Index) *Decoder {
	return &Decoder{index: index}
}

// Default returns a decoder over the English vocabulary.
func Default() *Decoder {
	return New(wordlist.EnglishIndex())
}

// Why(中文): 与加解密工具共用同一归一化语义：空白折叠、统一小写，保证同义输入得到同一结果。
// Why(English): Collapse whitespace and lowercase so equivalent inputs decode identically.
func Tokenize(phrase string) []string {
	parts := strings.Fields(phrase)
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	return parts
}

// Canonical returns the normalized single-space form of phrase.
func Canonical(phrase string) string {
	return strings.Join(Tokenize(phrase), " ")
}

// Decode decodes phrase in the given mode.
func (d *Decoder) Decode(phrase string, mode Mode) Outcome {
	ent, err := d.entropy(phrase, mode)
	return Outcome{Phrase: phrase, Entropy: ent, Err: err}
}

// Apply decodes phrase under cfg. A strict failure is retried in lenient mode
// only when cfg.Fallback is set; otherwise the failure carries a diagnostic.
func (d *Decoder) Apply(phrase string, cfg Config) Outcome {
	out := d.Decode(phrase, cfg.Mode)
	if out.Err == nil {
		return out
	}
	if cfg.Mode == Strict && cfg.Fallback {
		retry := d.Decode(phrase, Lenient)
		if retry.Err == nil {
			retry.FellBack = true
			return retry
		}
		out = retry
	}
	var diag *DiagnosticError
	if errors.As(out.Err, &diag) {
		out.Diagnostic = diag
	} else {
		out.Diagnostic = d.Diagnose(phrase)
	}
	return out
}

func (d *Decoder) entropy(phrase string, mode Mode) ([]byte, error) {
	words := Tokenize(phrase)
	if len(words) == 0 {
		return nil, ErrEmptyPhrase
	}
	indices, unknown := d.resolve(words)
	if len(unknown) > 0 {
		if mode == Lenient {
			return nil, d.diagnostic(DiagnosticUnknownWords, unknown, len(words))
		}
		return nil, &UnknownWordError{Word: unknown[0]}
	}
	if _, ok := entropyBytes[len(words)]; !ok {
		return nil, &InvalidWordCountError{Count: len(words)}
	}
	bits := bitpack.Pack(indices)
	if mode == Lenient {
		return bitpack.ToBytes(bits), nil
	}
	entBits, csBits := bitpack.Split(bits)
	ent := bitpack.ToBytes(entBits)
	if !bitpack.Equal(bitpack.Checksum(ent, len(csBits)), csBits) {
		return nil, ErrChecksumMismatch
	}
	return ent, nil
}

// resolve maps words to ranks and collects every unresolved word, in order.
func (d *Decoder) resolve(words []string) ([]uint16, []string) {
	indices := make([]uint16, 0, len(words))
	var unknown []string
	for _, w := range words {
		i, ok := d.index.Lookup(w)
		if !ok {
			unknown = append(unknown, w)
			continue
		}
		indices = append(indices, i)
	}
	return indices, unknown
}

// Diagnose classifies why phrase fails strict decoding: unknown words first,
// then word count, then checksum. It returns nil for a valid phrase.
func (d *Decoder) Diagnose(phrase string) *DiagnosticError {
	words := Tokenize(phrase)
	if _, unknown := d.resolve(words); len(unknown) > 0 {
		return d.diagnostic(DiagnosticUnknownWords, unknown, len(words))
	}
	if _, ok := entropyBytes[len(words)]; !ok {
		return d.diagnostic(DiagnosticWordCount, nil, len(words))
	}
	if _, err := d.entropy(phrase, Strict); err != nil {
		return d.diagnostic(DiagnosticChecksum, nil, len(words))
	}
	return nil
}

func (d *Decoder) diagnostic(kind DiagnosticKind, words []string, count int) *DiagnosticError {
	return &DiagnosticError{
		Kind:      kind,
		Words:     words,
		Count:     count,
		Languages: []wordlist.Language{d.index.Language()},
	}
}

// EntropyLen returns the strict entropy length in bytes for a word count.
func EntropyLen(words int) (int, bool) {
	n, ok := entropyBytes[words]
	return n, ok
}

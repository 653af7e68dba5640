package decode

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Format selects how entropy is rendered. It is independent of Mode.
type Format int

const (
	Hex Format = iota
	ByteList
)

// Outcome is the result of decoding one phrase: either Entropy or Err is set.
type Outcome struct {
	Phrase  string
	Entropy []byte
	Err     error
	// Diagnostic explains Err in human terms when the caller asked for one.
	Diagnostic *DiagnosticError
	// FellBack is set when a strict failure was recovered by lenient decoding.
	FellBack bool
}

// OK reports whether the phrase decoded.
func (o Outcome) OK() bool { return o.Err == nil }

// Reason is the text reported for a failed outcome.
func (o Outcome) Reason() string {
	if o.Diagnostic != nil {
		return o.Diagnostic.Error()
	}
	if o.Err != nil {
		return o.Err.Error()
	}
	return ""
}

// Render serializes the entropy as lowercase hex or as a byte list like "[0, 17, 255]".
func (o Outcome) Render(f Format) string {
	if f == ByteList {
		return byteList(o.Entropy)
	}
	return hex.EncodeToString(o.Entropy)
}

func byteList(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte(']')
	return sb.String()
}

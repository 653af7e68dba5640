package report

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"MNEM2ENT/internal/batch"
	"MNEM2ENT/internal/decode"
)

func fixtureMnemonic() string {
	return "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
}

func runPhrases(phrases ...string) []batch.Result {
	return batch.Run(decode.Default(), phrases, decode.Config{}, batch.WithWorkers(2))
}

// Why(中文): 5 条输入中 3 条有效时必须成功退出，并完整报告 2 条错误。
// Why(English): Three valid phrases out of five must exit zero while still reporting both failures.
func TestSummarizeBulkScenario(t *testing.T) {
	s := Summarize(runPhrases(
		fixtureMnemonic(),
		"zzzzz abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		fixtureMnemonic(),
		"abandon qqqqq abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		fixtureMnemonic(),
	))
	if s.Total != 5 || len(s.Successes) != 3 || len(s.Failures) != 2 {
		t.Fatalf("unexpected partition: total=%d ok=%d failed=%d", s.Total, len(s.Successes), len(s.Failures))
	}
	if s.Failures[0].Index != 1 || s.Failures[1].Index != 3 {
		t.Fatalf("expected failures in input order, got %d and %d", s.Failures[0].Index, s.Failures[1].Index)
	}
	if s.FailureRate != 0.4 {
		t.Fatalf("expected failure rate 0.4, got %v", s.FailureRate)
	}
	if _, ok := s.Advisory(); ok {
		t.Fatalf("expected no advisory at 40%%")
	}
	if code := s.ExitCode(false); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
}

func TestExitCodeTotalFailure(t *testing.T) {
	s := Summarize(runPhrases("zzzzz", "qqqqq"))
	if code := s.ExitCode(false); code != 2 {
		t.Fatalf("expected 2, got %d", code)
	}
	if code := s.ExitCode(true); code != 0 {
		t.Fatalf("expected 0 with skipInvalid, got %d", code)
	}
	msg, ok := s.Advisory()
	if !ok || !strings.Contains(msg, "may not be BIP39") {
		t.Fatalf("expected advisory, got %q", msg)
	}
}

func TestExitCodeSingleFailure(t *testing.T) {
	s := Summarize(runPhrases(strings.Repeat("abandon ", 12)))
	if code := s.ExitCode(false); code != 2 {
		t.Fatalf("expected 2, got %d", code)
	}
}

func TestExitCodeEmptyInput(t *testing.T) {
	s := Summarize(nil)
	if s.FailureRate != 0 || s.ExitCode(false) != 0 {
		t.Fatalf("expected empty input to succeed")
	}
}

func TestAdvisoryStrictlyAboveHalf(t *testing.T) {
	s := Summarize(runPhrases(fixtureMnemonic(), "zzzzz"))
	if _, ok := s.Advisory(); ok {
		t.Fatalf("expected no advisory at exactly 50%%")
	}
}

func TestLogNeverWritesPhrases(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	secret := "zzzzz abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	Summarize(runPhrases(secret)).Log(zap.New(core))

	failed := logs.FilterMessage("decode failed").All()
	if len(failed) != 1 {
		t.Fatalf("expected one failure entry, got %d", len(failed))
	}
	for _, e := range logs.All() {
		for k, v := range e.ContextMap() {
			if s, ok := v.(string); ok && strings.Contains(s, "abandon") {
				t.Fatalf("field %s leaks the phrase", k)
			}
		}
	}
	if got := failed[0].ContextMap()["phrase_b3"]; got != Fingerprint(secret) {
		t.Fatalf("unexpected fingerprint field: %v", got)
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(fixtureMnemonic())
	if len(a) != 16 || a != Fingerprint(fixtureMnemonic()) {
		t.Fatalf("expected stable 16-char fingerprint, got %q", a)
	}
	if a == Fingerprint("abandon") {
		t.Fatalf("expected distinct fingerprints")
	}
}

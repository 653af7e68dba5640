package report

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"MNEM2ENT/internal/batch"
)

// AdvisoryThreshold is the failure rate above which the input is flagged as
// possibly not BIP39 at all.
const AdvisoryThreshold = 0.5

const advisoryText = "more than half of the phrases failed to decode; the input may not be BIP39 " +
	"(for example a different seed-phrase scheme reusing the same word list)"

// Summary partitions ordered batch results. Successes and Failures keep input order.
type Summary struct {
	Total       int
	Successes   []batch.Result
	Failures    []batch.Result
	FailureRate float64
}

// Why(中文): 成功与失败分区时保留输入顺序，失败率只在存在失败时计算，空输入的失败率为 0。
// Why(English): Partition keeps input order; the failure rate is zero unless something failed.
func Summarize(results []batch.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Successes = append(s.Successes, r)
		} else {
			s.Failures = append(s.Failures, r)
		}
	}
	if len(s.Failures) > 0 {
		s.FailureRate = float64(len(s.Failures)) / float64(s.Total)
	}
	return s
}

// Advisory returns the not-BIP39 warning when the failure rate exceeds AdvisoryThreshold.
func (s Summary) Advisory() (string, bool) {
	if s.FailureRate > AdvisoryThreshold {
		return advisoryText, true
	}
	return "", false
}

// Why(中文): 批量输入尽力而为：只有非空输入全部失败且未要求跳过无效项时才以失败退出。
// Why(English): Exit non-zero only when a non-empty input produced zero successes and skipInvalid is off.
func (s Summary) ExitCode(skipInvalid bool) int {
	if s.Total > 0 && len(s.Successes) == 0 && !skipInvalid {
		return 2
	}
	return 0
}

// Log writes one entry per failure. Phrases are secrets and are logged only
// as fingerprints.
func (s Summary) Log(logger *zap.Logger) {
	for _, f := range s.Failures {
		logger.Info("decode failed",
			zap.Int("index", f.Index),
			zap.String("phrase_b3", Fingerprint(f.Phrase)),
			zap.Error(f.Err))
	}
	logger.Info("summary",
		zap.Int("total", s.Total),
		zap.Int("ok", len(s.Successes)),
		zap.Int("failed", len(s.Failures)),
		zap.Float64("failure_rate", s.FailureRate))
}

// Fingerprint returns a short BLAKE3 digest identifying a phrase without revealing it.
func Fingerprint(phrase string) string {
	sum := blake3.Sum256([]byte(phrase))
	return hex.EncodeToString(sum[:8])
}

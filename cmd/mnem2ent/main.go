package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"MNEM2ENT/internal/batch"
	"MNEM2ENT/internal/decode"
	"MNEM2ENT/internal/logging"
	"MNEM2ENT/internal/progress"
	"MNEM2ENT/internal/report"
)

var (
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#90EE90"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
)

type cli struct {
	Mnemonic       string `short:"m" xor:"source" help:"Mnemonic phrase to decode."`
	Input          string `short:"i" xor:"source" placeholder:"FILE" help:"Read one phrase per line from FILE (- for stdin)."`
	Output         string `short:"o" placeholder:"FILE" help:"Write entropy, one per line, to FILE (- for stdout)."`
	Hex            bool   `default:"true" negatable:"" help:"Render entropy as hex; --no-hex prints a byte list."`
	IgnoreChecksum bool   `help:"Skip checksum validation and return every packed bit as entropy."`
	Fallback       bool   `help:"Retry phrases that fail strict decoding with --ignore-checksum semantics."`
	SkipInvalid    bool   `help:"Exit 0 even when no phrase could be decoded."`
	Errors         string `placeholder:"FILE" help:"Write phrases that failed to FILE."`
	WithReason     bool   `help:"Append a tab and the failure reason to each --errors line."`
	Workers        int    `default:"0" help:"Number of decode workers (0 uses every CPU)."`
	NoProgress     bool   `help:"Do not draw a progress bar."`
	Verbose        bool   `short:"v" help:"Enable debug logging."`
}

func (c *cli) config() decode.Config {
	cfg := decode.Config{
		Mode:        decode.Strict,
		Format:      decode.Hex,
		SkipInvalid: c.SkipInvalid,
		Fallback:    c.Fallback,
	}
	if c.IgnoreChecksum {
		cfg.Mode = decode.Lenient
	}
	if !c.Hex {
		cfg.Format = decode.ByteList
	}
	return cfg
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Why(中文): 沿用 enc/dec 工具的退出码语义：参数错误 1，处理失败 2，便于脚本稳定判定。
// Why(English): Keep the usage = 1, processing = 2 exit-code split so scripts can tell failures apart.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var c cli
	exited := false
	parser, err := kong.New(&c,
		kong.Name("mnem2ent"),
		kong.Description("Recover the entropy bytes behind BIP39 mnemonic phrases."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return failProcess(stderr, err.Error())
	}
	_, err = parser.Parse(args)
	if exited {
		return 0
	}
	if err != nil {
		return failUsage(stderr, err.Error())
	}
	if c.Workers < 0 {
		return failUsage(stderr, fmt.Sprintf("invalid --workers: %d", c.Workers))
	}
	cfg := c.config()

	logger := logging.New(stderr, c.Verbose).With(zap.String("run_id", uuid.NewString()))
	defer func() { _ = logger.Sync() }()

	phrases, err := collectPhrases(&c, stdin, stdout)
	if err != nil {
		return failProcess(stderr, "read input failed: "+err.Error())
	}
	if len(phrases) == 0 {
		return failProcess(stderr, "no mnemonic phrases to decode")
	}

	bar := progress.New(stderr, !c.NoProgress && len(phrases) > 1 && progress.IsTerminal(stderr))
	results := batch.Run(decode.Default(), phrases, cfg,
		batch.WithWorkers(c.Workers),
		batch.WithProgress(bar.Step),
		batch.WithLogger(logger))
	bar.Finish()

	summary := report.Summarize(results)
	summary.Log(logger)
	for _, r := range summary.Successes {
		if r.FellBack {
			logger.Warn("checksum ignored after strict failure",
				zap.Int("index", r.Index),
				zap.String("phrase_b3", report.Fingerprint(r.Phrase)))
		}
	}

	if err := writeResults(&c, cfg, summary, stdout, stderr); err != nil {
		return failProcess(stderr, err.Error())
	}
	printSummary(stderr, summary)
	return summary.ExitCode(cfg.SkipInvalid)
}

func writeResults(c *cli, cfg decode.Config, s report.Summary, stdout, stderr io.Writer) error {
	if c.Output == "" {
		for _, r := range s.Successes {
			fmt.Fprintf(stdout, "\n%s\nMnemonic: %s\nEntropy: %s\n",
				resultStyle.Render(fmt.Sprintf("=== Result %d ===", r.Index+1)),
				decode.Canonical(r.Phrase), r.Render(cfg.Format))
		}
	} else {
		var b strings.Builder
		for _, r := range s.Successes {
			b.WriteString(r.Render(cfg.Format))
			b.WriteString("\n")
		}
		if err := writeOutputBytes(c.Output, stdout, []byte(b.String())); err != nil {
			return fmt.Errorf("write output failed: %w", err)
		}
		if c.Output != "-" {
			fmt.Fprintf(stdout, "\n✓ Results saved to %s\n  Processed: %s mnemonics\n",
				c.Output, humanize.Comma(int64(len(s.Successes))))
		}
	}

	for _, r := range s.Failures {
		fmt.Fprintf(stderr, "\n%s\nMnemonic: %s\nError: %s\n",
			errorStyle.Render(fmt.Sprintf("=== Error %d ===", r.Index+1)),
			decode.Canonical(r.Phrase), r.Reason())
	}
	if c.Errors != "" {
		if err := writeOutputBytes(c.Errors, stdout, []byte(formatFailures(s.Failures, c.WithReason))); err != nil {
			return fmt.Errorf("write errors file failed: %w", err)
		}
	}
	return nil
}

// formatFailures renders one failed phrase per line, optionally followed by a
// tab and the failure reason.
func formatFailures(failures []batch.Result, withReason bool) string {
	var b strings.Builder
	for _, r := range failures {
		b.WriteString(decode.Canonical(r.Phrase))
		if withReason {
			b.WriteString("\t")
			b.WriteString(r.Reason())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func printSummary(w io.Writer, s report.Summary) {
	if s.Total > 1 || len(s.Failures) > 0 {
		fmt.Fprintf(w, "\nProcessed %s phrases: %s ok, %s failed (%s%%)\n",
			humanize.Comma(int64(s.Total)),
			humanize.Comma(int64(len(s.Successes))),
			humanize.Comma(int64(len(s.Failures))),
			humanize.FtoaWithDigits(s.FailureRate*100, 1))
	}
	if msg, ok := s.Advisory(); ok {
		fmt.Fprintln(w, "warning: "+msg)
	}
}

func failUsage(w io.Writer, msg string) int {
	_, _ = io.WriteString(w, "mnem2ent: "+msg+"\n")
	return 1
}

func failProcess(w io.Writer, msg string) int {
	_, _ = io.WriteString(w, "mnem2ent: "+msg+"\n")
	return 2
}

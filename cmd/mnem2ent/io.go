package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Why(中文): 三种来源（文件、-m 参数、交互输入）统一产出有序的非空行列表，解码核心只认这一种形态。
// Why(English): File, flag, and interactive sources all yield one ordered list of non-empty lines.
func collectPhrases(c *cli, stdin io.Reader, prompt io.Writer) ([]string, error) {
	switch {
	case c.Input != "":
		raw, err := readInputBytes(c.Input, stdin)
		if err != nil {
			return nil, err
		}
		return splitPhrases(string(raw)), nil
	case c.Mnemonic != "":
		return splitPhrases(c.Mnemonic), nil
	default:
		fmt.Fprintln(prompt, "Enter mnemonic phrase:")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return splitPhrases(line), nil
	}
}

func splitPhrases(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// readInputBytes treats "-" as stdin so file and pipe sources share one failure path.
func readInputBytes(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// writeOutputBytes treats "-" as stdout.
func writeOutputBytes(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"fib/pkg/rsp"
)

// ExpandResponseFiles replaces every "@path" argument with the tokens read
// from that file. Each line is split by rsp.SplitLine; blank lines and lines
// starting with '#' are ignored. Expansion is not recursive.
func ExpandResponseFiles(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '@' {
			out = append(out, arg)
			continue
		}
		tokens, err := readResponseFile(arg[1:])
		if err != nil {
			return nil, err
		}
		out = append(out, tokens...)
	}
	return out, nil
}

func readResponseFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read response file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	var tokens []string
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := rsp.SplitLine(line)
		if err != nil {
			return nil, fmt.Errorf("response file %s line %d: %w", path, i+1, err)
		}
		tokens = append(tokens, fields...)
	}
	return tokens, nil
}

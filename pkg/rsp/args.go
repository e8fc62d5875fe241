package rsp

import (
	"fmt"
	"strings"

	"github.com/anmitsu/go-shlex"
)

// Response file lines use Windows command-line quoting: only double quotes
// group words, a single quote is an ordinary character, and backslashes are
// literal unless they precede a double quote. There, 2n backslashes yield n
// backslashes and a quote delimiter, and 2n+1 yield n backslashes and a
// literal quote.

// lineTokenizer is the shell tokenizer with double quotes as the only
// quote character.
type lineTokenizer struct {
	shlex.DefaultTokenizer
}

func (t *lineTokenizer) IsQuote(r rune) bool {
	return r == '"'
}

// SplitLine splits one response file line into arguments.
func SplitLine(line string) ([]string, error) {
	lexer := shlex.NewLexerString(escapeLiteralBackslashes(line), true, true)
	lexer.SetTokenizer(&lineTokenizer{})
	fields, err := lexer.Split()
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", line, err)
	}
	return fields, nil
}

// escapeLiteralBackslashes doubles every run of backslashes that is not
// followed by a double quote, so the shell lexer keeps them as written.
func escapeLiteralBackslashes(line string) string {
	var sb strings.Builder
	run := 0
	flush := func(beforeQuote bool) {
		n := run
		if !beforeQuote {
			n *= 2
		}
		sb.WriteString(strings.Repeat(`\`, n))
		run = 0
	}
	for _, r := range line {
		if r == '\\' {
			run++
			continue
		}
		flush(r == '"')
		sb.WriteRune(r)
	}
	flush(false)
	return sb.String()
}

// QuoteArg returns s in a form SplitLine reads back as exactly s. Values
// without whitespace or quotes are returned unchanged.
func QuoteArg(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"'") {
		return s
	}

	var sb strings.Builder
	sb.WriteByte('"')
	run := 0
	for _, r := range s {
		switch r {
		case '\\':
			run++
			continue
		case '"':
			sb.WriteString(strings.Repeat(`\`, 2*run+1))
		default:
			sb.WriteString(strings.Repeat(`\`, run))
		}
		run = 0
		sb.WriteRune(r)
	}
	sb.WriteString(strings.Repeat(`\`, 2*run))
	sb.WriteByte('"')
	return sb.String()
}

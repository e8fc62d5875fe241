// File: pkg/rsp/wizard.go
package rsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Wizard asks the questions that make up a response file. Empty answers
// and end of input fall back to the defaults.
type Wizard struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// NewWizard returns a Wizard reading answers from in and writing prompts to out.
func NewWizard(in io.Reader, out io.Writer, logger *zap.Logger) *Wizard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wizard{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run asks every question in order and returns the collected options.
func (w *Wizard) Run() (Options, error) {
	var opts Options
	var err error

	if opts.Languages, err = w.askDefault("Which languages do you want to bundle? (csharp, java, python ... or 'all')\n   ", "all"); err != nil {
		return Options{}, err
	}
	if opts.Output, err = w.askDefault("\nOutput file name? (for example: bundle.txt)\n   ", "bundle.txt"); err != nil {
		return Options{}, err
	}
	if opts.IncludeNote, err = w.askYesNo("\nAdd a source note before each file? (y/n) [default: n]\n   "); err != nil {
		return Options{}, err
	}
	if opts.Sort, err = w.askSort(); err != nil {
		return Options{}, err
	}
	if opts.RemoveEmptyLines, err = w.askYesNo("\nRemove empty lines? (y/n) [default: n]\n   "); err != nil {
		return Options{}, err
	}
	if opts.Author, err = w.askDefault("\nAuthor name (optional, press Enter to skip):\n   ", ""); err != nil {
		return Options{}, err
	}

	fileName, err := w.askDefault("\nResponse file name? (for example: commands.rsp)\n   ", DefaultFileName)
	if err != nil {
		return Options{}, err
	}
	opts.FileName = NormalizeFileName(fileName)

	w.logger.Debug("Collected response file answers",
		zap.String("languages", opts.Languages),
		zap.String("output", opts.Output),
		zap.String("sort", opts.Sort),
		zap.String("fileName", opts.FileName))
	return opts, nil
}

// ask prints the prompt and returns the trimmed answer. ok is false when the
// input ended before anything was typed.
func (w *Wizard) ask(prompt string) (answer string, ok bool, err error) {
	fmt.Fprint(w.out, prompt)
	line, err := w.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			w.logger.Error("Failed to read user input", zap.Error(err))
			return "", false, fmt.Errorf("failed to read user input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	return strings.TrimSpace(line), true, nil
}

func (w *Wizard) askDefault(prompt, def string) (string, error) {
	answer, _, err := w.ask(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// askYesNo returns true for "y", "yes" or "כן", ignoring case.
func (w *Wizard) askYesNo(prompt string) (bool, error) {
	answer, _, err := w.ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "כן":
		return true, nil
	}
	return false, nil
}

// askSort repeats the question until the answer is "name", "type" or empty.
func (w *Wizard) askSort() (string, error) {
	answer, _, err := w.ask("\nHow to sort the files? (name/type) [default: name]\n   ")
	for {
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		if answer == "" {
			return "name", nil
		}
		if answer == "name" || answer == "type" {
			return answer, nil
		}
		answer, _, err = w.ask("Wrong value. Please write 'name' or 'type' (or press Enter for default): ")
	}
}

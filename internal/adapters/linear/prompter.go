// Package linear provides a line-oriented version prompt for pipes and CI.
package linear

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/ui/output"
	"go.trai.ch/zerr"
)

// Prompter implements ports.VersionPrompter by reading one line per question.
type Prompter struct {
	in  *bufio.Reader
	out *termenv.Output
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
// Nil arguments default to os.Stdin and os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: output.NewWithProfile(out, output.ColorProfileANSI),
	}
}

type readResult struct {
	line string
	err  error
}

// Ask prints the prompt for packageName and returns the operator's answer,
// or defaultVersion when the answer is empty.
func (p *Prompter) Ask(ctx context.Context, packageName, defaultVersion string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPromptAborted.Error()), "package", packageName)
	}

	question := fmt.Sprintf("Input new version for %s: ", packageName)
	hint := p.out.String(fmt.Sprintf("[%s]", defaultVersion)).Faint().String()
	if _, err := p.out.WriteString(question + hint + " "); err != nil {
		return "", zerr.Wrap(err, domain.ErrPromptAborted.Error())
	}

	results := make(chan readResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		results <- readResult{line: line, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		return "", zerr.With(zerr.Wrap(ctx.Err(), domain.ErrPromptAborted.Error()), "package", packageName)
	case res = <-results:
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", zerr.With(zerr.Wrap(res.err, domain.ErrPromptAborted.Error()), "package", packageName)
		}
		if res.line == "" {
			return "", zerr.With(domain.ErrPromptAborted, "package", packageName)
		}
		// An unterminated last line still counts as an answer.
		_, _ = p.out.WriteString("\n")
	}

	answer := strings.TrimRight(res.line, "\r\n")
	if answer == "" {
		return defaultVersion, nil
	}
	return answer, nil
}

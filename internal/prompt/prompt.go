// Package prompt asks the operator for deployment choices on a line-based
// terminal. Every question is repeated until a valid answer is given.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/extract"
	"github.com/eardeploy/cli/internal/output"
)

var (
	yesAnswers = []string{"y", "yes"}
	noAnswers  = []string{"n", "no"}
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ask writes message and returns the next trimmed input line. End of input
// aborts the deployment.
func (p *Prompter) ask(message string) (string, error) {
	fmt.Fprint(p.out, message+" ")
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
		return "", eerrors.Wrap(eerrors.ErrAborted, "no answer given")
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ChooseTarget lists targets with their index and returns the one selected.
func (p *Prompter) ChooseTarget(targets []string) (string, error) {
	if len(targets) == 0 {
		return "", eerrors.NewNotFoundError("no library directories configured", "",
			"Add a directory to common.loader or pass --library-target.")
	}

	fmt.Fprintln(p.out, "Possible deployment targets are (read from catalina.properties):")
	for i, t := range targets {
		fmt.Fprintf(p.out, "\t%d -> %s\n", i, t)
	}

	for {
		answer, err := p.ask("Where do you want the libraries to be deployed?")
		if err != nil {
			return "", err
		}
		i, err := strconv.Atoi(answer)
		if err == nil && i >= 0 && i < len(targets) {
			return targets[i], nil
		}
	}
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(message string) (bool, error) {
	for {
		answer, err := p.ask(message + " (yes|no)")
		if err != nil {
			return false, err
		}
		answer = strings.ToLower(answer)
		switch {
		case contains(yesAnswers, answer):
			return true, nil
		case contains(noAnswers, answer):
			return false, nil
		}
	}
}

// OverwriteDecision returns an extract.Decision that keeps files whose
// checksum already matches and asks about the rest.
func (p *Prompter) OverwriteDecision() extract.Decision {
	return func(basename string, existing, incoming uint32) (bool, error) {
		if existing == incoming {
			return false, nil
		}
		output.Info("checksums differ", "file", basename,
			"old_crc", fmt.Sprintf("%08x", existing), "new_crc", fmt.Sprintf("%08x", incoming))
		return p.Confirm(fmt.Sprintf("File %s already exists and differs, overwrite?", basename))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

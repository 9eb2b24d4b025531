package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LerianStudio/license-gate/gate"
)

// PromptPicker asks for the executable on a line-oriented terminal.
// A number selects a listed candidate; any other input is taken as a path.
type PromptPicker struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptPicker reads answers from in and writes prompts to out.
func NewPromptPicker(in io.Reader, out io.Writer) *PromptPicker {
	return &PromptPicker{in: bufio.NewReader(in), out: out}
}

// PickExecutable implements gate.Picker. Empty input or EOF cancels.
func (p *PromptPicker) PickExecutable(_ context.Context, candidates []string) (string, error) {
	if len(candidates) > 0 {
		_, _ = fmt.Fprintln(p.out, "Known locations:")

		for i, c := range candidates {
			_, _ = fmt.Fprintf(p.out, "  %d) %s\n", i+1, c)
		}
	}

	_, _ = fmt.Fprint(p.out, "Executable path or number (empty to cancel): ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", gate.ErrPickCancelled
	}

	if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(candidates) {
		return candidates[n-1], nil
	}

	return answer, nil
}

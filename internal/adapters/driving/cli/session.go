package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// Console messages shared by the line-mode session.
const (
	quitHint        = "Type 'quit' at anytime to exit"
	interruptNotice = "App interrupted. Enter again."
	farewell        = "Goodbye!"
)

// prompter reads answers line by line.
// Lines are read on their own goroutine so an interrupt can re-prompt
// without waiting for input.
type prompter struct {
	out        io.Writer
	styles     *styles.Styles
	lines      chan string
	interrupts chan os.Signal
	done       chan struct{}
	closeOnce  sync.Once
}

// openPrompter creates the session prompter. Replaced in tests.
var openPrompter = newPrompter

func newPrompter(in io.Reader, out io.Writer, s *styles.Styles) *prompter {
	if s == nil {
		s = styles.DefaultStyles()
	}

	p := &prompter{
		out:        out,
		styles:     s,
		lines:      make(chan string),
		interrupts: make(chan os.Signal, 1),
		done:       make(chan struct{}),
	}
	signal.Notify(p.interrupts, os.Interrupt)

	go p.read(in)

	return p
}

func (p *prompter) read(in io.Reader) {
	defer close(p.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case p.lines <- strings.TrimRight(scanner.Text(), "\r"):
		case <-p.done:
			return
		}
	}
}

// Ask prints prompt and waits for one line.
// An interrupt reprints the prompt; end of input returns domain.ErrCancelled.
func (p *prompter) Ask(ctx context.Context, prompt string) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-p.interrupts:
			fmt.Fprintln(p.out)
			p.Println(p.styles.Warning.Render(interruptNotice))
		case line, ok := <-p.lines:
			if !ok {
				fmt.Fprintln(p.out)
				return "", domain.ErrCancelled
			}
			return line, nil
		}
	}
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Ask(ctx, question+" ")
	if err != nil {
		return false, err
	}
	if domain.IsQuit(answer) {
		return false, domain.ErrCancelled
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Println writes a line to the session output.
func (p *prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Close stops interrupt delivery and releases the reader goroutine.
func (p *prompter) Close() {
	p.closeOnce.Do(func() {
		signal.Stop(p.interrupts)
		close(p.done)
	})
}

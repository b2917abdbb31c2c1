package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

func newTestPrompter(t *testing.T, input string) (*prompter, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	p := newPrompter(strings.NewReader(input), buf, nil)
	t.Cleanup(p.Close)
	return p, buf
}

func TestPrompter_Ask(t *testing.T) {
	p, buf := newTestPrompter(t, "first\r\nsecond\n")
	ctx := context.Background()

	line, err := p.Ask(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = p.Ask(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	assert.Equal(t, "> > ", buf.String())
}

func TestPrompter_AskEndOfInput(t *testing.T) {
	p, _ := newTestPrompter(t, "")

	_, err := p.Ask(context.Background(), "> ")

	assert.ErrorIs(t, err, domain.ErrCancelled)
}

func TestPrompter_AskContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	p := newPrompter(pr, io.Discard, nil)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Ask(ctx, "> ")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_InterruptReprompts(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	buf := new(bytes.Buffer)
	p := newPrompter(pr, buf, nil)
	defer p.Close()

	// No input is available yet, so the pending interrupt is handled first.
	p.interrupts <- os.Interrupt

	type answer struct {
		line string
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		line, err := p.Ask(context.Background(), "> ")
		done <- answer{line, err}
	}()

	_, err := io.WriteString(pw, "after\n")
	require.NoError(t, err)

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, "after", got.line)
	assert.Contains(t, buf.String(), interruptNotice)
	assert.Equal(t, 2, strings.Count(buf.String(), "> "))
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		err      error
	}{
		{name: "y", input: "y\n", expected: true},
		{name: "yes uppercase", input: " YES \n", expected: true},
		{name: "n", input: "n\n", expected: false},
		{name: "blank defaults to no", input: "\n", expected: false},
		{name: "anything else", input: "maybe\n", expected: false},
		{name: "quit cancels", input: "quit\n", err: domain.ErrCancelled},
		{name: "end of input cancels", input: "", err: domain.ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestPrompter(t, tt.input)

			ok, err := p.Confirm(context.Background(), "Continue? [y/N]")

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Contains(t, buf.String(), "Continue? [y/N] ")
		})
	}
}

func TestPrompter_CloseIsIdempotent(t *testing.T) {
	p, _ := newTestPrompter(t, "unread\n")

	assert.NotPanics(t, func() {
		p.Close()
		p.Close()
	})
}

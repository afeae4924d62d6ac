// ABOUTME: Context-aware line reader for the interactive prompt.
// ABOUTME: Reads stdin in a goroutine so Ctrl+C interrupts a blocked read.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

type input struct {
	scanner *bufio.Scanner
}

func newInput() *input {
	return &input{scanner: bufio.NewScanner(os.Stdin)}
}

// line prints the prompt and reads one trimmed line. Returns io.EOF on
// closed stdin and the context error on cancellation.
func (in *input) line(ctx context.Context, prompt string) (string, error) {
	fmt.Print(prompt)

	lineCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		if in.scanner.Scan() {
			lineCh <- in.scanner.Text()
			return
		}
		if err := in.scanner.Err(); err != nil {
			errCh <- err
			return
		}
		errCh <- io.EOF
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errCh:
		return "", err
	case line := <-lineCh:
		return strings.TrimSpace(line), nil
	}
}

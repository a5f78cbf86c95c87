package ipc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineLength guards against a runaway stream; the largest maps are
// well under a megabyte per line.
const maxLineLength = 16 << 20

// ReadLine reads a single newline-terminated line, without the terminator.
// EOF before any data is returned as io.EOF so callers can tell a finished
// game from a broken pipe.
func ReadLine(r *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				return b.String(), nil
			}
			if err == io.EOF {
				return "", io.EOF
			}
			return "", fmt.Errorf("read line: %w", err)
		}
		b.Write(chunk)
		if b.Len() > maxLineLength {
			return "", fmt.Errorf("invalid line length: over %d bytes", maxLineLength)
		}
		if !isPrefix {
			return strings.TrimRight(b.String(), "\r"), nil
		}
	}
}

// EncodeCommands renders one turn's commands as a single protocol line.
func EncodeCommands(cmds []Command) string {
	var parts []string
	for _, c := range cmds {
		parts = append(parts, c.Tokens()...)
	}
	return strings.Join(parts, " ")
}

// WriteLine writes s followed by a newline and flushes so the engine sees
// it immediately.
func WriteLine(w *bufio.Writer, s string) error {
	if _, err := w.WriteString(s); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Package prompt reads single-line answers from an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Ask writes question to w, reads one line from r and returns it with
// surrounding whitespace trimmed. A blank line, or end of input before any
// text, yields def.
func Ask(r io.Reader, w io.Writer, question, def string) (string, error) {
	if def != "" {
		question = fmt.Sprintf("%s [%s]: ", strings.TrimRight(question, ": "), def)
	}
	if _, err := io.WriteString(w, question); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

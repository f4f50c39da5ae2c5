// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errAborted is returned when the user declines to continue.
var errAborted = errors.New("aborted")

// lineConfirmer asks yes/no questions on a terminal.
//
// Only "y" and "yes" (any case) mean yes. End of input means no.
type lineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (c *lineConfirmer) Confirm(context context.Context, prompt string) (bool, error) {
	answer, err := ask(context, c.in, c.out, prompt+" [y/N] ")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ask prints prompt and reads one trimmed line.
//
// A final line without a newline is still returned; io.EOF is only reported
// when nothing was read.
func ask(context context.Context, in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	if err := context.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(out, prompt)

	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// navigator reports navigation signals on stderr when verbose.
type navigator struct {
	out     io.Writer
	verbose bool
}

func (n *navigator) ToList() {
	if n.verbose {
		fmt.Fprintln(n.out, "→ list")
	}
}

func (n *navigator) ToError() {
	if n.verbose {
		fmt.Fprintln(n.out, "→ error")
	}
}

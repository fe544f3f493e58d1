// Package repl reads commands from a terminal, runs them and prints the results.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"contactbook/internal/addressbook"
	"contactbook/internal/handler"
)

const (
	welcome     = "Welcome to the assistant bot!"
	prompt      = "Enter a command: "
	goodbye     = "Good bye!"
	lineTooLong = "The command is too long, please try again."
)

// MaxLineBytes caps a single input line. Longer lines are skipped whole.
const MaxLineBytes = 64 * 1024

var errLineTooLong = errors.New("input line too long")

// input is one line read from the terminal, or the reason it could not be read.
type input struct {
	line string
	err  error
}

// Store persists the address book when the session ends.
type Store interface {
	Save(book *addressbook.AddressBook) error
}

// REPL is one interactive session over a single address book.
type REPL struct {
	log   *zap.Logger
	h     *handler.Handler
	book  *addressbook.AddressBook
	store Store
}

// New creates a REPL that dispatches through h and saves book to store on exit.
func New(log *zap.Logger, h *handler.Handler, book *addressbook.AddressBook, store Store) *REPL {
	return &REPL{log: log, h: h, book: book, store: store}
}

// Parse splits line on whitespace into a command and its arguments. Case
// folding of the command is left to the handler.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Run loops until close/exit, end of input or ctx is cancelled, then saves
// the address book. The save error, if any, is returned.
func (r *REPL) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan input)
	go func() {
		defer close(lines)
		br := bufio.NewReaderSize(in, MaxLineBytes)
		for {
			line, err := readLine(br)
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case lines <- input{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil && !errors.Is(err, errLineTooLong) {
				return
			}
		}
	}()

	fmt.Fprintln(out, welcome)
	for {
		fmt.Fprint(out, prompt)

		var next input
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			r.log.Info("session interrupted")
			return r.finish(out)
		case next, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out)
			r.log.Info("input closed")
			return r.finish(out)
		}
		if errors.Is(next.err, errLineTooLong) {
			r.log.Warn("input line skipped", zap.Error(next.err))
			fmt.Fprintln(out, lineTooLong)
			continue
		}
		if next.err != nil {
			fmt.Fprintln(out)
			r.log.Error("reading input failed", zap.Error(next.err))
			return r.finish(out)
		}

		cmd, args := Parse(next.line)
		if cmd == "" {
			continue
		}
		if r.h.IsExit(cmd) {
			return r.finish(out)
		}
		fmt.Fprintln(out, r.h.Dispatch(cmd, args))
	}
}

func (r *REPL) finish(out io.Writer) error {
	if err := r.store.Save(r.book); err != nil {
		r.log.Error("saving address book failed", zap.Error(err))
		fmt.Fprintf(out, "Could not save contacts: %v\n", err)
		return fmt.Errorf("save address book: %w", err)
	}
	fmt.Fprintln(out, goodbye)
	return nil
}

// readLine returns the next line without its line ending. A line longer
// than the reader's buffer is consumed up to its end and reported as
// errLineTooLong. A final line without a newline is still returned.
func readLine(br *bufio.Reader) (string, error) {
	frag, isPrefix, err := br.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return string(frag), nil
	}
	for isPrefix {
		_, isPrefix, err = br.ReadLine()
		if err != nil {
			// EOF inside an over-long line still ends that line
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}
	return "", errLineTooLong
}

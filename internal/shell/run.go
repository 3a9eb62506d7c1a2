package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// scan feeds lines from in to the returned channel until end of input, then
// reports the scanner error on errc. It gives up as soon as ctx is done.
func scan(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

/*
Run executes commands read line by line from in until q, end of input or
ctx is done. It returns ErrQuit for the first two and ctx.Err() for the
last, without waiting for a pending read on in to finish. The reading
goroutine exits once in is closed.
*/
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lines, errc := scan(ctx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "> ")

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			if err != nil {
				return fmt.Errorf("unable to read command: %w", err)
			}
			return ErrQuit
		case line = <-lines:
		}

		err := s.Execute(line)
		if errors.Is(err, ErrQuit) {
			return err
		}
		if err != nil {
			s.log.WithError(err).Debug("command rejected")
			fmt.Fprintln(s.out, "error:", err)
		}
	}
}

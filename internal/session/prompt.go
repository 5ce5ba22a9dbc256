package session

import (
	"context"
	"errors"
	"io"
	"strings"
)

const yesNoTries = 3

type inputLine struct {
	text string
	err  error
}

// readInput feeds s.lines from the player's input until it fails. The channel
// is closed after the failing read has been delivered.
func (s *Session) readInput() {
	defer close(s.lines)
	for {
		line, err := s.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && line != "" {
				s.lines <- inputLine{text: strings.TrimRight(line, "\r\n")}
				err = io.EOF
			}
			s.lines <- inputLine{err: err}
			return
		}
		s.lines <- inputLine{text: strings.TrimRight(line, "\r\n")}
	}
}

// readLine reads one line of input without its line terminator.
// A final line without a newline is returned with a nil error; io.EOF is
// returned only when nothing is left. A cancelled ctx returns ctx.Err()
// without waiting for the player.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if s.lines == nil {
		s.lines = make(chan inputLine)
		go s.readInput()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// prompt writes p and reads the answer.
func (s *Session) prompt(ctx context.Context, p string) (string, error) {
	s.printf("%s", p)
	return s.readLine(ctx)
}

// askYesNo prompts until it gets yes/y or no/n. Closed input and repeated
// invalid answers count as no.
func (s *Session) askYesNo(ctx context.Context, p string) (bool, error) {
	for tries := 0; tries < yesNoTries; tries++ {
		answer, err := s.prompt(ctx, p)
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return false, nil
		}
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			s.printf("Please enter 'yes' or 'no'.\n")
		}
	}
	return false, nil
}

package render

import "strings"

// stages are the gallows drawings from an empty scaffold to a full figure.
var stages = [][]string{
	{"  +---+", "  |   |", "      |", "      |", "      |", "      |"},
	{"  +---+", "  |   |", "  O   |", "      |", "      |", "      |"},
	{"  +---+", "  |   |", "  O   |", "  |   |", "      |", "      |"},
	{"  +---+", "  |   |", "  O   |", " /|   |", "      |", "      |"},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", "      |", "      |"},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", " /    |", "      |"},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", " / \\  |", "      |"},
}

// Stage maps a wrong-guess count onto a drawing index. The first wrong guess
// always draws something and a used-up budget always draws the full figure.
func Stage(wrong, budget int) int {
	last := len(stages) - 1
	switch {
	case wrong <= 0 || budget <= 0:
		return 0
	case wrong >= budget:
		return last
	}
	s := wrong * last / budget
	if s == 0 {
		s = 1
	}
	if s == last {
		s = last - 1
	}
	return s
}

// Figure renders the gallows for wrong out of budget attempts.
func Figure(wrong, budget int) string {
	var b strings.Builder
	b.WriteString("=========\n")
	for _, line := range stages[Stage(wrong, budget)] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("=========\n")
	return b.String()
}

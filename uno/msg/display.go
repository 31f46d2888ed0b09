package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintlns(lines []string) string {
	return Sprintln(strings.Join(lines, "\n"))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

// Paint renders a card in its own colour.
func Paint(c card.Card) string {
	if c == nil {
		return "nothing"
	}
	return c.Color().Paint(c.String())
}

func PaintAll(cards []card.Card) string {
	painted := make([]string, 0, len(cards))
	for _, c := range cards {
		painted = append(painted, Paint(c))
	}
	return "[" + strings.Join(painted, " ") + "]"
}

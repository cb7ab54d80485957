package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

// Cards lists cards painted in their colors, separated by commas.
func Cards(cards []*card.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

// Plural appends an s to word unless count is one.
func Plural(count int, word string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, word)
	}
	return fmt.Sprintf("%d %ss", count, word)
}

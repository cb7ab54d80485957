package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	Red Color = iota
	Blue
	Green
	Yellow
	// Wild is the colorless sentinel carried by wild cards until a color is chosen.
	Wild
)

var Stdout io.Writer = color.Output

var names = map[Color]string{
	Red:    "red",
	Blue:   "blue",
	Green:  "green",
	Yellow: "yellow",
	Wild:   "wild",
}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
}

// Playable returns the four colors a wild card can be turned into.
func Playable() []Color {
	return []Color{Red, Blue, Green, Yellow}
}

func (c Color) Valid() bool {
	return c >= Red && c <= Wild
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func (c Color) String() string {
	return c.Name()
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range names {
		if c != Wild && n == name {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}

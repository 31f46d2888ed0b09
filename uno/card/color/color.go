package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Color is one of the fixed card colours. Black marks wild cards.
type Color interface {
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(format string, args ...interface{}) string {
	return c.colorFunction(format, args...)
}

func (c *colorStruct) String() string {
	return c.name
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Black = &colorStruct{
	name:          "black",
	colorFunction: color.New(color.FgHiWhite, color.BgBlack).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// All lists the colours a card can carry, wild black last.
var All = []Color{Red, Yellow, Green, Blue, Black}

var colors = map[string]Color{
	Red.name:    Red,
	Yellow.name: Yellow,
	Green.name:  Green,
	Blue.name:   Blue,
	Black.name:  Black,
}

func ByName(name string) (Color, error) {
	color := colors[name]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

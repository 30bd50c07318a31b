package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction(text) + fmt.Sprintf("(%s)", c.name)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...) + fmt.Sprintf("(%s)", c.name)
}

func (c *colorStruct) String() string {
	return c.colorFunction(c.name)
}

// noneColor is the color of an unresolved wild card. It paints nothing.
type noneColor struct{}

func (noneColor) Name() string { return "none" }

func (noneColor) Paint(text string) string { return text }

func (noneColor) Paintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func (noneColor) String() string { return "none" }

var None Color = noneColor{}

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

var Stdout io.Writer = color.Output

var colors = map[string]Color{
	Red.name:    Red,
	Yellow.name: Yellow,
	Green.name:  Green,
	Blue.name:   Blue,
}

// Table returns the four playable table colors in seating-chart order.
func Table() []Color {
	return []Color{Yellow, Green, Blue, Red}
}

func ByName(name string) (Color, error) {
	color := colors[name]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

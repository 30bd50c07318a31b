package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/uno-gym/card/color"
)

// Prompter reads interactive choices, reprompting on garbage input.
// When its reader runs dry it falls back to the first offered option so a
// scripted stdin cannot wedge a game.
type Prompter struct {
	scanner *bufio.Scanner
}

func NewPrompter(in io.Reader) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in)}
}

func (p *Prompter) promptString(message string) (string, bool) {
	for {
		fmt.Fprintln(color.Stdout, message)
		if !p.scanner.Scan() {
			return "", false
		}
		input := strings.TrimSpace(p.scanner.Text())
		if input == "" {
			fmt.Fprintln(color.Stdout, "Invalid text input")
			continue
		}
		return input, true
	}
}

// PromptOption keeps asking until the input matches one of options.
func (p *Prompter) PromptOption(message string, options []string) string {
	for {
		input, ok := p.promptString(message)
		if !ok {
			return options[0]
		}
		input = strings.ToLower(input)
		for _, option := range options {
			if input == option {
				return input
			}
		}
		fmt.Fprintln(color.Stdout, fmt.Sprintf("No option assigned to '%s'", input))
	}
}

func (p *Prompter) PromptColor() color.Color {
	message := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red.Name(),
		color.Yellow.Name(),
		color.Green.Name(),
		color.Blue.Name(),
	)
	for {
		input, ok := p.promptString(message)
		if !ok {
			return color.Blue
		}
		chosenColor, err := color.ByName(strings.ToLower(input))
		if err != nil {
			fmt.Fprintln(color.Stdout, fmt.Sprintf("Unknown color '%s'", input))
			continue
		}
		return chosenColor
	}
}

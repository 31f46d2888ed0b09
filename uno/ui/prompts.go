package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
)

// Stdin is where answers to prompts are read from.
var Stdin io.Reader = os.Stdin

// DrawLabel is the answer for drawing a card instead of playing one.
const DrawLabel = "0"

func PromptString(message string) (string, error) {
	for {
		Println(message)
		var input string
		_, err := fmt.Fscanln(Stdin, &input)
		if err == io.EOF {
			return "", err
		}
		if err != nil {
			Println(consts.ErrorsInputInvalid.Error())
			continue
		}
		return input, nil
	}
}

func promptUppercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToUpper(input), err
}

// PromptCardSelection asks which of cards to play. A nil card means the
// player chose to draw instead.
func PromptCardSelection(cards []card.Card) (card.Card, error) {
	cardOptions := make(map[string]card.Card, len(cards))
	cardSelectionLines := []string{"Select a card to play:"}
	for i, c := range cards {
		label := optionLabel(i)
		cardOptions[label] = c
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", msg.Paint(c), label))
	}
	cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("draw a card (enter %s)", DrawLabel))
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel, err := promptUppercaseString(cardSelectionMessage)
		if err != nil {
			return nil, err
		}
		if selectedLabel == DrawLabel {
			return nil, nil
		}
		selectedCard, found := cardOptions[selectedLabel]
		if !found {
			Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedCard, nil
	}
}

func promptLowercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToLower(input), err
}

// PromptColor asks which colour a wild card should take.
func PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName, err := promptLowercaseString(colorMessage)
		if err != nil {
			return nil, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil || chosenColor == color.Black {
			Printfln("Invalid color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}

package ui

const (
	firstLabel   = 'A'
	labelLetters = 26
)

// optionLabel names the option at index the way spreadsheet columns are
// named: A to Z, then AA, AB and so on. Labels only use uppercase letters so
// they survive promptUppercaseString.
func optionLabel(index int) string {
	var letters []rune
	for index >= 0 {
		letters = append([]rune{firstLabel + rune(index%labelLetters)}, letters...)
		index = index/labelLetters - 1
	}
	return string(letters)
}

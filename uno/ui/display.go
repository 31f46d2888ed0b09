package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/uno/uno/card/color"
)

// Delay is how long the terminal pauses after every line so computer turns can be followed.
var Delay = 1 * time.Second

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(Delay)
}

// Print writes a message that already ends with a line break.
func Print(message string) {
	fmt.Fprint(color.Stdout, message)
	time.Sleep(Delay)
}

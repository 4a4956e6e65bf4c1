// Command fsmatch demonstrates the matcher on a sample pattern.
package main

import (
	"fmt"

	"github.com/coregx/fsmatch"
)

func main() {
	re := fsmatch.MustCompile("a*4.+hi")

	for _, input := range []string{
		"aaaaaa4uhi",
		"4uhi",
		"meow",
		"pupupuuuu",
	} {
		fmt.Printf("%q matches %q: %v\n", input, re.String(), re.MatchString(input))
	}
}

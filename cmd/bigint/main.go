package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var errorColor = color.New(color.FgRed, color.Bold)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		errorColor.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

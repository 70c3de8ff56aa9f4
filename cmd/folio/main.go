package main

import (
	"fmt"
	"os"
)

func main() {
	root, app := newRootCmdWithApp()
	err := root.Execute()
	if closeErr := app.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

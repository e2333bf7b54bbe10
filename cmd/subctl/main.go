package main

import (
	"fmt"
	"os"
)

func main() {
	root, e := newRootCmd()
	err := root.Execute()
	e.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

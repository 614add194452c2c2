package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().command().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/haytac/elm-emoji-gen/internal/cli"
	"github.com/haytac/elm-emoji-gen/internal/logging"
)

func main() {
	// Basic logger until RootCmd.PersistentPreRunE applies the configured one.
	if _, err := logging.Setup(logging.Config{Level: "info", Console: true, TimeFormat: "15:04:05"}); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	cli.Execute()
}

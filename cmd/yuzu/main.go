package main

import (
	"os"

	"github.com/go-yuzu/yuzu/cmd/yuzu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

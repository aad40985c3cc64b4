package main

import (
	"os"

	"github.com/thenoetrevino/trackr/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

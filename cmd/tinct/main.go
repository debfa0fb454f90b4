package main

import (
	"github.com/arthur-debert/tinct/internal/cli"
)

func main() {
	cli.Main()
}

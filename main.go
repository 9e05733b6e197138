package main

import (
	"github.com/fluxmhd/gomhd/cmd"
	_ "github.com/fluxmhd/gomhd/internal/blasaccel"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/zchn/yosys/pkg/cmd"
)

func main() {
	cmd.Execute()
}

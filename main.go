package main

import (
	"github.com/Manu343726/autosized/cmd"
)

func main() {
	cmd.Execute()
}

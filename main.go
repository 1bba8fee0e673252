package main

import (
	"github.com/zonesec/zonesec/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/netxfw/antiddos/cmd/antiddos/commands"
)

func main() {
	commands.Execute()
}

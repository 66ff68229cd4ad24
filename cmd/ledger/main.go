package main

import (
	"RouletteLedger/cmd"
	"os"
)

func main() {
	os.Exit(cmd.Run())
}

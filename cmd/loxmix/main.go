/*
File   : loxmix/cmd/loxmix/main.go

Command loxmix is the executable entry point: a thin wrapper around
cmd.Execute, matching the teacher's pattern of keeping main.go a one-line
delegation into a cobra root command.
*/
package main

import (
	"os"

	"github.com/loxmix-lang/loxmix/cmd/loxmix/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

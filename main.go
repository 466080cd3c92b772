// main is the entry point for the gitlens CLI.
package main

import (
	"github.com/bmeddeb/gitlens/cmd"
	"github.com/bmeddeb/gitlens/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}

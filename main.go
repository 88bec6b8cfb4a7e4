// main is the entry point for the starchart CLI.
package main

import (
	"github.com/huangsam/starchart/cmd"
	"github.com/huangsam/starchart/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("starchart failed", err)
	}
}

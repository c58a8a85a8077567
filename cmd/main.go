package main

import (
	"github.com/kerbaras/fictions/cmd/fictions"
)

func main() {
	cmd.Execute()
}

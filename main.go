package main

import "github.com/patrickdmiller/trim-scripts/cmd"

func main() {
	cmd.Execute()
}

package main

import "patternmap/cmd/patternmap-cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/nfrund/gogoz/cmd/gogoz-cli/cmd"

func main() {
	cmd.Execute()
}

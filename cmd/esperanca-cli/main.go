package main

import "github.com/nfrund/esperanca/cmd/esperanca-cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/nfrund/vep/cmd/vep-cli/cmd"

func main() {
	cmd.Execute()
}

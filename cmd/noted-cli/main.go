package main

import "noted/cmd/noted-cli/cmd"

func main() {
	cmd.Execute()
}

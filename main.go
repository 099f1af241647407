package main

import "github.com/brogergvhs/langtally/cmd"

func main() {
	cmd.Execute()
}

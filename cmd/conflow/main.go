package main

import "conflow/cmd/conflow/commands"

func main() {
	commands.Execute()
}

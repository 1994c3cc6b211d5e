package main

import "github.com/battlesnakeio/arcade/cmd/snake/commands"

func main() {
	commands.Execute()
}

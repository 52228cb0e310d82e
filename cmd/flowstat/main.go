package main

import "github.com/livp123/flowstat/cmd/flowstat/commands"

func main() {
	commands.Execute()
}

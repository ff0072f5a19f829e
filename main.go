package main

import "github.com/jywlabs/ralph/cmd"

func main() {
	cmd.Execute()
}

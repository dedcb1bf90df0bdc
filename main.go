package main

import "eventide/cmd"

func main() {
	cmd.Execute()
}

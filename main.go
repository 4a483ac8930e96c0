package main

import "github.com/nearkit/nearctl/cmd"

func main() {
	cmd.Execute()
}

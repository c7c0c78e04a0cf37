package main

import "accessctl/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/chriserin/rfrecord/cmd"

func main() {
	cmd.Execute()
}

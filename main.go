package main

import "github.com/ArnaudCalmettes/binarize/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/example/thaivocab/cmd"

func main() {
	cmd.Execute()
}

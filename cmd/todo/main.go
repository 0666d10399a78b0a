package main

import "github.com/tkc/vibe-todo/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/mcoot/connectgame-go/internal/cli"

func main() {
	cli.Execute()
}

package main

import "bomkit/internal/cli"

func main() {
	cli.Execute(cli.NewAddCommand())
}

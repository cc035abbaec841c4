package main

import "pft/internal/cli"

func main() {
	cli.Execute()
}

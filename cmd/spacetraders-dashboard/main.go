package main

import "github.com/andrescamacho/spacetraders-dashboard/internal/adapters/cli"

func main() {
	cli.Execute()
}

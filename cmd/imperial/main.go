package main

import "github.com/aalvaropc/imperial/internal/cli"

func main() {
	cli.Execute()
}

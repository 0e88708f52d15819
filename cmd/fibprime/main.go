package main

import "github.com/aalvaropc/fibprime/internal/cli"

func main() {
	cli.Execute()
}

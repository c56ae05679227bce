package main

import "github.com/vendio/vendio/cmd/vendio/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/jrsteele09/go-colten/internal/cli"

func main() {
	cli.Execute()
}

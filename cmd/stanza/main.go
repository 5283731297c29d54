package main

import "github.com/apamildner/stanza/cmd/stanza/cli"

func main() {
	cli.Execute()
}

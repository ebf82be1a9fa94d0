package main

import "github.com/nitingoyal0996/gbif-sub000/internal/cli"

func main() {
	cli.Execute()
}

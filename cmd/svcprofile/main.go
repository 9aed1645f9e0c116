package main

import "github.com/ppiankov/svcprofile/internal/cli"

func main() {
	cli.Execute()
}

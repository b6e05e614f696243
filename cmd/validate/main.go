package main

import "github.com/Hareramrai/missing-validators/pkg/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/loan-mgt/ipfs-viewer/internal/cli"

func main() {
	cli.Execute()
}

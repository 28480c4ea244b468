package main

import "github.com/viralvaultgg/solana-program/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/leftweet/nextgamesnippet/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/n64decomp/mipsdis/cmd"

func main() {
	cmd.Execute()
}

package main

import "quillpress/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/atailhq/atail/cmd"

func main() {
	cmd.Execute()
}

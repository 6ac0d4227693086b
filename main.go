package main

import "github.com/zjrosen/beadmatch/cmd"

func main() {
	cmd.Execute()
}

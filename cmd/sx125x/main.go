package main

import "github.com/rfkit/sx125x/cmd/sx125x/cmd"

func main() {
	cmd.Execute()
}

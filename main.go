package main

import "github.com/xvierd/skycast/cmd"

func main() {
	cmd.Execute()
}

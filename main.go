package main

import "portprobe/cmd"

func main() {
	cmd.Execute()
}

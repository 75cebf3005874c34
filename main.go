package main

import "github.com/sjzsdu/vpm/cmd"

func main() {
	cmd.Execute()
}

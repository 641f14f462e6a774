package main

import "github.com/mouse-blink/blackbox/cmd"

func main() {
	cmd.Execute()
}

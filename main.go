package main

import "github.com/starfighterlily/nova16/cmd"

func main() {
	cmd.Execute()
}

package main

import "runway/cmd"

func main() {
	cmd.Execute()
}

package main

import "sll_visualizer/cmd"

func main() {
	cmd.Execute()
}

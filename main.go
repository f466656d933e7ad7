package main

import "toplist/cmd"

func main() {
	cmd.Execute()
}

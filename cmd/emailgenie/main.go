package main

import "emailgenie/cmd"

func main() {
	cmd.Execute()
}

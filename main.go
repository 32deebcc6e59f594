package main

import "github.com/alexiusacademia/gobolt/cmd"

func main() {
	cmd.Execute()
}

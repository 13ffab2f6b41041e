package main

import "github.com/gaurav-prasanna/sumistock/cmd"

func main() {
	cmd.Execute()
}

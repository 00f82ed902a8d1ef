package main

import "github.com/Norgate-AV/scb/cmd"

func main() {
	cmd.Execute()
}

package main

import "jobboard/cmd/jobboard/command"

func main() {
	command.Execute()
}

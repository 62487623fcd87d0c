package main

import "twijournal/cmd/admin/commands"

func main() {
	commands.Execute()
}

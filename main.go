package main

import "github.com/timvw/pane-pick/cmd"

func main() {
	cmd.Execute()
}

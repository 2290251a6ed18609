package main

import "github.com/CosmoTheDev/agent-notify/cmd"

func main() {
	cmd.Execute()
}

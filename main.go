package main

import "github.com/pthm-cable/shorelark/cmd"

func main() {
	cmd.Execute()
}

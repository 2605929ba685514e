package main

import "eox-sync/cmd"

func main() {
	cmd.Execute()
}

package main

import "d4-translate/cmd/d4translate/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/spc-group/go-xdi/cmd/xdi/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/ridoystarlord/crudgen/cmd"

func main() {
	cmd.Execute()
}

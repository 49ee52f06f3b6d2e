package main

import (
	"mailtriage/cmd"
)

func main() {
	cmd.Execute()
}

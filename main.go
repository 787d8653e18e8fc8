package main

import "github.com/tupyy/outcome/cmd"

func main() {
	cmd.Execute()
}

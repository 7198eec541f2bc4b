package main

import "github.com/MyCarrier-DevOps/go-releaseable/cmd"

func main() {
	cmd.Execute()
}

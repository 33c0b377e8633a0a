package main

import "github.com/mountainkid/nutriscore/pkg/cli"

func main() {
	cli.Execute()
}

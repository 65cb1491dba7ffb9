package main

import "github.com/deploymenttheory/go-cpio/cmd"

func main() {
	cmd.Execute()
}

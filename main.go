package main

import "mini-reconcile/cmd"

func main() {
	cmd.Execute()
}

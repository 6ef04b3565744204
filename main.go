package main

import "register-reconciler/cmd"

func main() {
	cmd.Execute()
}

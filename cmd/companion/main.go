package main

import "sukoon/cmd/companion/root"

func main() {
	root.Execute()
}

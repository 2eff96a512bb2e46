package main

import "github.com/marcandregoldmann-prog/startpad-xp-revival/cmd/startpad/root"

func main() {
	root.Execute()
}

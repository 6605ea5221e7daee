package main

import "github.com/dreamer2trader-boop/MindForge/cmd/mf/root"

func main() {
	root.Execute()
}

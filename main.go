package main

import "asset-editor/cmd"

func main() {
	cmd.Execute()
}

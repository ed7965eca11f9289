package main

import "github.com/theirongolddev/spendplan/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/theirongolddev/launchdash/cmd"

func main() {
	cmd.Execute()
}

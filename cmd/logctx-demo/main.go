package main

import "github.com/neocrym/log-with-context/cmd/logctx-demo/cmd"

func main() {
	cmd.Execute()
}

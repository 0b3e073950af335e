package main

import "github.com/cmmoran/pibxgen/cmd"

func main() {
	cmd.Execute()
}

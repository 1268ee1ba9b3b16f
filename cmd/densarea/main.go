package main

import "github.com/density-regions/densarea/cmd/densarea/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/shandysiswandi/gocompare/cmd/tablectl/cmd"

func main() {
	cmd.Execute()
}

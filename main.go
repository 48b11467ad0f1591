/*
	Copyright 2024 Patrick Koehlmann
*/

package main

import "github.com/pkoehlmann/pitbook-go/cmd"

func main() {
	cmd.Execute()
}

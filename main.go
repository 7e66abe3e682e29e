// main.go - Application entry point
package main

import "github.com/valpere/mbtiles_inspect/cmd"

func main() {
	cmd.Execute()
}

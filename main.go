package main

import (
	"log"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/cmd/geodar"
)

func main() {
	// Execute initializes all commands and starts the CLI
	geodar.Execute()
	log.Println("GeoDAR terminated")
}

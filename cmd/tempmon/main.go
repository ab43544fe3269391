package main

import (
	"github.com/advaithhl/TemperatureMonitor/cmd/tempmon/tempmoncmd"
)

func main() {
	tempmoncmd.Execute()
}

package main

import "github.com/tsiemens/dateutil/cmd"

func main() {
	cmd.Execute()
}

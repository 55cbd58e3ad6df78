package main

import (
	"fmt"
	"os"

	"github.com/Katikatikou/P6-DATAARCHITECT/cmd/dataarchitect/command"
)

func main() {
	if err := command.RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

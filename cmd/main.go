package main

import (
	"fmt"
	"os"

	"github.com/openbridge/bridgevote/cmd/bridgevote"
)

func main() {
	rootCmd := bridgevote.BuildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/on-the-ground/collatz_ive_go/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}

package main

import (
	cmd "github.com/getzep/csmentor/cmd/csmentor"
	"github.com/getzep/csmentor/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting csmentor")
	cmd.Execute()
}

// Package main provides the enigforce command-line interface.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/mdelacour/enigforce/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

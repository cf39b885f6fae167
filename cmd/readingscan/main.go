package main

import (
	"fmt"
	"log/slog"
	"os"

	"readingscan/internal/application/scanner"
)

func main() {
	if err := scanner.Start(); err != nil {
		slog.Error(fmt.Sprintf("scanner.Start(): %s", err))
		os.Exit(1)
	}
}

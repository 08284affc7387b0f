package main

import (
	"context"
	"os"

	"github.com/templui/aura/cmd/aura/cmd"
	"github.com/templui/aura/internal/logger"
)

func main() {
	err := cmd.Root().ExecuteContext(context.Background())
	logger.Flush()
	if err != nil {
		os.Exit(1)
	}
}

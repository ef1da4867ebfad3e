package main

import (
	"os"

	"github.com/basenana/sqljieba/cmd/apps"
	"github.com/basenana/sqljieba/utils/logger"
)

func main() {
	defer logger.Sync()
	if err := apps.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

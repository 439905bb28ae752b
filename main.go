package main

import (
	"os"

	"github.com/oliverbarnes/taskplan/cmd"
	"github.com/oliverbarnes/taskplan/pkg/utils"
)

func main() {
	logger := utils.GetLogger()
	// Defer closing the logger to ensure all buffered logs are written
	defer func() {
		if err := logger.Close(); err != nil {
			os.Stderr.WriteString("Error closing logger: " + err.Error() + "\n")
		}
	}()

	if err := cmd.Execute(); err != nil {
		logger.Logf("Application error: %v", err)
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/basenana/sqljieba/config"
)

var overwrite bool

func init() {
	initCmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing configuration")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "generate local configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return initDefaultConfig(WorkSpace, overwrite)
	},
}

func initDefaultConfig(workspace string, overwrite bool) error {
	fmt.Printf("Workspace: %s\n", workspace)
	configPath := localConfigFilePath(workspace)
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return fmt.Errorf("%s existed, use --overwrite to replace it", configPath)
	}

	cfg, err := config.DefaultConfig(workspace)
	if err != nil {
		return fmt.Errorf("init workspace failed: %w", err)
	}
	fmt.Printf("Workspace Database File: %s\n", cfg.Index.Path)
	fmt.Printf("Dictionary Dir: %s\n", config.DictDir())

	if err = writeConfig(configPath, cfg); err != nil {
		return fmt.Errorf("write config file failed: %w", err)
	}
	fmt.Printf("Workspace Config: %s\n", configPath)
	fmt.Println("Generate local configuration succeed")
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/basenana/sqljieba/config"
)

var WorkSpace string

func init() {
	RunCmd.AddCommand(initCmd)
	RunCmd.PersistentFlags().StringVar(&WorkSpace, "workspace", config.LocalUserPath(), "sqljieba workspace")
}

var RunCmd = &cobra.Command{
	Use:   "config",
	Short: "sqljieba config management",
	Run: func(cmd *cobra.Command, args []string) {
		configPath := localConfigFilePath(WorkSpace)
		fmt.Printf("Workspace Config: %s\n\n", configPath)

		config.FilePath = configPath
		cfg, err := config.NewConfigLoader().GetConfig()
		if err != nil {
			fmt.Printf("load config failed: %s\n", err.Error())
			fmt.Println("Generate local configuration with 'sqljieba config init'")
			return
		}

		raw, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			fmt.Printf("marshal config failed: %s\n", err.Error())
			return
		}
		fmt.Println(string(raw))
	},
}

func localConfigFilePath(local string) string {
	return path.Join(local, config.DefaultConfigBase)
}

func writeConfig(configPath string, cfg config.Config) error {
	raw, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, raw, 0644)
}

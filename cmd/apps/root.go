/*
 Copyright 2023 NanaFS Authors.

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package apps

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/basenana/sqljieba/cmd/apps/apis"
	configapp "github.com/basenana/sqljieba/cmd/apps/config"
	"github.com/basenana/sqljieba/config"
	"github.com/basenana/sqljieba/pkg/ftparser"
	"github.com/basenana/sqljieba/pkg/indexer"
	"github.com/basenana/sqljieba/utils"
	"github.com/basenana/sqljieba/utils/logger"
	"github.com/basenana/sqljieba/utils/metrics"
)

func init() {
	RootCmd.AddCommand(daemonCmd)
	RootCmd.AddCommand(tokenizeCmd)
	RootCmd.AddCommand(indexCmd)
	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(configapp.RunCmd)

	RootCmd.PersistentFlags().StringVar(&config.FilePath, "config", config.DefaultConfigPath(), "sqljieba config file")
}

var RootCmd = &cobra.Command{
	Use:   "sqljieba",
	Short: "Jieba full-text parser",
	Long:  `Chinese word segmentation for SQL full-text indexes.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var daemonCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start server service",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(false)
		if err != nil {
			panic(err)
		}
		defer metrics.FlushSentry()

		parser, err := newParser(cfg)
		if err != nil {
			panic(err)
		}
		idx, err := indexer.New(cfg.Index, parser)
		if err != nil {
			panic(err)
		}

		stop := utils.HandleTerminalSignal()
		run(parser, idx, cfg, stop)
	},
}

func run(parser *ftparser.Parser, idx indexer.Indexer, cfg config.Config, stopCh chan struct{}) {
	log := logger.NewLogger("sqljieba")
	log.Infow("starting", "version", config.VersionInfo().Version(), "parser", parser.Name(), "backend", parser.Backend(), "index", cfg.Index.Type)

	if cfg.Api.Enable {
		s, err := apis.NewApiServer(parser, idx, cfg)
		if err != nil {
			log.Panicw("init http server failed", "err", err.Error())
		}
		go s.Run(stopCh)
	}

	log.Info("started")
	<-stopCh
	time.Sleep(time.Second)

	if err := idx.Close(); err != nil {
		log.Warnw("close indexer failed", "err", err)
	}
	if err := parser.Deinit(); err != nil {
		log.Warnw("release parser failed", "err", err)
	}
	log.Info("stopped")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "View version information",
	Run: func(cmd *cobra.Command, args []string) {
		vInfo := config.VersionInfo()
		fmt.Printf("Version: %s\n", vInfo.Version())
		fmt.Printf("GitCommit: %s\n", vInfo.Git)
		plugin := ftparser.Descriptor()
		fmt.Printf("Plugin: %s %s (%s)\n", plugin.Name, plugin.VersionString(), plugin.Description)
	},
}

// loadConfig reads --config. Commands that only tokenize may run without a
// config file, they fall back to the default dictionaries.
func loadConfig(allowDefault bool) (config.Config, error) {
	logger.InitLogger()

	var (
		cfg config.Config
		err error
	)
	if _, statErr := os.Stat(config.FilePath); statErr != nil && allowDefault {
		cfg = config.Config{Jieba: config.DefaultJieba()}
		err = config.Verify(&cfg)
	} else {
		cfg, err = config.NewConfigLoader().GetConfig()
	}
	if err != nil {
		return cfg, err
	}

	logger.SetDebug(cfg.Debug)
	if _, err = metrics.InitSentry(cfg.SentryDSN, config.VersionInfo().Version()); err != nil {
		logger.NewLogger("sqljieba").Warnw("init sentry failed", "err", err)
	}
	return cfg, nil
}

func newParser(cfg config.Config) (*ftparser.Parser, error) {
	factory, err := ftparser.Lookup(cfg.Index.Parser)
	if err != nil {
		return nil, err
	}
	parser := factory(cfg.Jieba)
	if err = parser.Init(context.Background()); err != nil {
		return nil, err
	}
	return parser, nil
}

/*
 Copyright 2026 NanaFS Authors.

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

package config

import (
	"fmt"
	"os"
)

type verifier func(config *Config) error

var verifiers = []verifier{
	setDefaultValue,
	checkJiebaConfig,
	checkIndexConfig,
	checkApiConfig,
}

func Verify(cfg *Config) error {
	for _, f := range verifiers {
		if err := f(cfg); err != nil {
			return err
		}
	}
	return nil
}

func setDefaultValue(config *Config) error {
	def := DefaultJieba()
	if config.Jieba.Backend == "" {
		config.Jieba.Backend = def.Backend
	}
	if config.Jieba.Backend == CppJiebaBackend {
		if config.Jieba.DictPath == "" {
			config.Jieba.DictPath = def.DictPath
		}
		if config.Jieba.HMMPath == "" {
			config.Jieba.HMMPath = def.HMMPath
		}
		if config.Jieba.UserDictPath == "" {
			config.Jieba.UserDictPath = def.UserDictPath
		}
	}
	if config.Index.Type == "" {
		config.Index.Type = MemoryIndex
	}
	if config.Index.Parser == "" {
		config.Index.Parser = defaultParser
	}
	if config.Index.CacheSize == 0 {
		config.Index.CacheSize = defaultCacheSize
	}
	return nil
}

func checkJiebaConfig(config *Config) error {
	jCfg := config.Jieba
	switch jCfg.Backend {
	case CppJiebaBackend:
		if jCfg.DictPath == "" || jCfg.HMMPath == "" {
			return fmt.Errorf("jieba.dict_path or jieba.hmm_path not config")
		}
	case JiebaGoBackend:
		if jCfg.DictPath == "" {
			return fmt.Errorf("jieba.dict_path not config")
		}
	case GseBackend, SpaceBackend:
	default:
		return fmt.Errorf("unknown jieba backend %s", jCfg.Backend)
	}
	if jCfg.StopWordsPath != "" {
		if _, err := os.Stat(jCfg.StopWordsPath); err != nil {
			return fmt.Errorf("check jieba.stop_words_path error: %s", err)
		}
	}
	return nil
}

func checkIndexConfig(config *Config) error {
	m := config.Index
	if m.CacheSize < 0 {
		return fmt.Errorf("index.cache_size is negative")
	}
	switch m.Type {
	case MemoryIndex:
		return nil
	case SqliteIndex:
		if m.Path == "" {
			return fmt.Errorf("path for sqlite db file is empty")
		}
		return nil
	case PostgresIndex, MysqlIndex:
		if m.DSN == "" {
			return fmt.Errorf("db dsn is empty")
		}
		return nil
	default:
		return fmt.Errorf("unknown index type %s", m.Type)
	}
}

func checkApiConfig(config *Config) error {
	aCfg := config.Api
	if !aCfg.Enable {
		return nil
	}
	if aCfg.Host == "" || aCfg.Port == 0 {
		return fmt.Errorf("api.host or api.port not config")
	}
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

var FilePath string

// FileEnv is read when --config is not given.
const FileEnv = "SQLJIEBA_CONFIG"

type Loader interface {
	GetConfig() (Config, error)
}

type localLoader struct{}

func (l localLoader) GetConfig() (Config, error) {
	result := Config{}

	filePath := FilePath
	if filePath == "" {
		filePath = os.Getenv(FileEnv)
	}
	if filePath == "" {
		return result, fmt.Errorf("--config not set")
	}

	f, err := os.Open(filePath)
	if err != nil {
		return result, fmt.Errorf("open config file failed: %s", err.Error())
	}
	defer f.Close()

	jd := json.NewDecoder(f)
	jd.DisallowUnknownFields()
	if err = jd.Decode(&result); err != nil {
		return result, fmt.Errorf("parse config failed: %s", err.Error())
	}
	if err = Verify(&result); err != nil {
		return result, fmt.Errorf("verify config failed: %w", err)
	}
	return result, nil
}

func NewConfigLoader() Loader {
	return localLoader{}
}

package config

import (
	"os"
	"path"
)

const (
	defaultWorkDir      = ".sqljieba"
	defaultSysLocalPath = "/var/lib/sqljieba"
	defaultSysDictDir   = "/usr/share/dict"

	DefaultConfigBase = "sqljieba.conf"

	// DictDirEnv overrides the directory the default dictionary paths live in.
	DictDirEnv = "SQLJIEBA_DICT_DIR"
)

func LocalUserPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultSysLocalPath
	}
	return path.Join(homeDir, defaultWorkDir)
}

func DefaultConfigPath() string {
	return path.Join(LocalUserPath(), DefaultConfigBase)
}

func DictDir() string {
	if dir := os.Getenv(DictDirEnv); dir != "" {
		return dir
	}
	return defaultSysDictDir
}

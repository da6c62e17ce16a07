package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"bevlog/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "BEVLOG_LOG_LEVEL")
	viper.BindEnv("storage.dataFile", "BEVLOG_DATA_FILE")
	viper.BindEnv("storage.backupFile", "BEVLOG_BACKUP_FILE")
	viper.BindEnv("storage.snapshotInterval", "BEVLOG_SNAPSHOT_INTERVAL")
	viper.BindEnv("tracking.defaultLanguage", "BEVLOG_LANGUAGE")
	viper.BindEnv("cache.enabled", "BEVLOG_CACHE_ENABLED")
	viper.BindEnv("cache.size", "BEVLOG_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "BeverageLogDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

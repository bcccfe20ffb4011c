package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Snapshot SnapshotConfig
	Catalog  CatalogConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type SnapshotConfig struct {
	Path string
}

type CatalogConfig struct {
	DefaultCity string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "awami-saholat")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SNAPSHOT_PATH", "data/snapshot.db")
	viper.SetDefault("DEFAULT_CITY", "Islamabad")

	// .env opsional - semua key punya default
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Snapshot: SnapshotConfig{
			Path: viper.GetString("SNAPSHOT_PATH"),
		},
		Catalog: CatalogConfig{
			DefaultCity: viper.GetString("DEFAULT_CITY"),
		},
	}

	return config, nil
}

// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	App struct {
		HeatmapMonths           int `mapstructure:"heatmap_months"`             // ヒートマップの対象期間 (月数)
		DefaultWeeklyTargetDays int `mapstructure:"default_weekly_target_days"` // 週あたりの学習目標日数の初期値
	} `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = "info"
	}
	if Cfg.App.HeatmapMonths <= 0 {
		log.Println("Heatmap months not set or invalid, using default '4'")
		Cfg.App.HeatmapMonths = 4
	}
	if Cfg.App.DefaultWeeklyTargetDays < 1 || Cfg.App.DefaultWeeklyTargetDays > 7 {
		log.Println("Default weekly target days not set or invalid, using default '4'")
		Cfg.App.DefaultWeeklyTargetDays = 4
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Heatmap Months: %d", Cfg.App.HeatmapMonths)
	log.Printf("Default Weekly Target Days: %d", Cfg.App.DefaultWeeklyTargetDays)

	return nil
}

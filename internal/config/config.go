// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Search criteria
	Keywords     []string `yaml:"keywords"`
	Location     string   `yaml:"location"`
	ExperienceID string   `yaml:"experience"`
	JobCount     int      `yaml:"job_count"`
	//Browser
	Headless    bool   `yaml:"headless"`
	CookiesPath string `yaml:"cookies_path"`
	//Paths
	CachePath string `yaml:"cache_path"`
	//Notifications (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}
	if loc := os.Getenv("JOB_LOCATION"); loc != "" {
		cfg.Location = loc
	}

	//Set default values if not set
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = []string{"Software Engineer"}
	}
	if cfg.Location == "" {
		cfg.Location = "India"
	}
	if cfg.ExperienceID == "" {
		cfg.ExperienceID = "all"
	}
	if cfg.JobCount == 0 {
		cfg.JobCount = 3
	}
	//callers enforce [1,10], the scraper clamps again defensively
	if cfg.JobCount < 1 {
		cfg.JobCount = 1
	}
	if cfg.JobCount > 10 {
		cfg.JobCount = 10
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	return cfg
}

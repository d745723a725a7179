package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultAPIBaseURL = "http://localhost:8000/api/v1"

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (local; default), TEST, QA, PROD
	AppName  string
	Build    string

	APIBaseURL string

	// StaleWindow is the maximum age of a slice's cached data before
	// orchestrators consider it eligible for a re-fetch.
	StaleWindow time.Duration

	// UseMockAPI points the client at the embedded mock backend instead of
	// the real one. Resolved once at startup; never toggled at runtime.
	UseMockAPI bool

	RollbarToken string
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Campusdesk")
	conf.SetDefault("build", "dev")
	conf.SetDefault("apiBaseURL", defaultAPIBaseURL)
	conf.SetDefault("staleWindow", 5*time.Minute)
	conf.SetDefault("useMockAPI", false)
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		APIBaseURL:   conf.GetString("apiBaseURL"),
		StaleWindow:  conf.GetDuration("staleWindow"),
		UseMockAPI:   conf.GetBool("useMockAPI"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
}

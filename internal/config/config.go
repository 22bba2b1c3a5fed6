package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	SMTP       SMTP       `mapstructure:",squash"`
	Email      Email      `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	APIKey string `mapstructure:"api_key"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type SMTP struct {
	Host     string `mapstructure:"smtp_host"`
	Port     int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"smtp_username"`
	Password string `mapstructure:"smtp_password"`
	Sender   string `mapstructure:"smtp_sender"`
}

type Email struct {
	Recipients    []string `mapstructure:"email_recipients"`
	SubjectPrefix string   `mapstructure:"email_subject_prefix"`
}

type ReportSync struct {
	CronSchedule       string `mapstructure:"report_sync_cron"`
	DatePreset         string `mapstructure:"report_sync_date_preset"`
	RequestDelayMillis int    `mapstructure:"report_sync_request_delay_ms"`
	MaxConcurrentJobs  int    `mapstructure:"report_sync_max_concurrent_jobs"`
	Enabled            bool   `mapstructure:"report_sync_enabled"`
	OutputDir          string `mapstructure:"report_sync_output_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("API_KEY", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_SENDER", "")

	viper.SetDefault("EMAIL_RECIPIENTS", "")
	viper.SetDefault("EMAIL_SUBJECT_PREFIX", "Meta Ads Data")

	// Report run defaults
	viper.SetDefault("REPORT_SYNC_CRON", "0 7 * * *")       // every day at 7am
	viper.SetDefault("REPORT_SYNC_DATE_PRESET", "today")    // Graph API date window
	viper.SetDefault("REPORT_SYNC_REQUEST_DELAY_MS", 100)   // pause between Graph calls
	viper.SetDefault("REPORT_SYNC_MAX_CONCURRENT_JOBS", 3)  // accounts processed in parallel
	viper.SetDefault("REPORT_SYNC_ENABLED", false)          // enable the scheduled run
	viper.SetDefault("REPORT_SYNC_OUTPUT_DIR", "./reports") // where CSVs are written

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load the .env file first so viper sees the variables
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper successfully")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	// Drop empty entries left behind by a trailing comma in EMAIL_RECIPIENTS
	recipients := make([]string, 0, len(config.Email.Recipients))
	for _, r := range config.Email.Recipients {
		if r != "" {
			recipients = append(recipients, r)
		}
	}
	config.Email.Recipients = recipients

	return config, nil
}

// loadEnvFile loads the .env file with godotenv, trying the usual locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine the current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env file loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}

package config

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"600"` // a synchronous scrape run can take minutes
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN            string `env:"DSN,required"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout   int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	Operator struct {
		Username string `env:"USERNAME" envDefault:"admin"`
		Password string `env:"PASSWORD,required"`
	} `envPrefix:"OPERATOR_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"1209600"` // 14 days, in seconds
		Secret     string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	Portal struct {
		BaseURL  string `env:"BASE_URL" envDefault:"https://legacy.shiftgen.com"`
		Username string `env:"USERNAME,required"`
		Password string `env:"PASSWORD,required"`
		// Sites is a semicolon-separated list of id=name pairs, walked in order.
		Sites           string `env:"SITES" envDefault:"82=St Joseph Scribe;80=St Joseph/CHOC Physician;84=St Joseph/CHOC MLP"`
		SiteChangeDelay int    `env:"SITE_CHANGE_DELAY" envDefault:"2000"` // milliseconds
		PageLoadDelay   int    `env:"PAGE_LOAD_DELAY" envDefault:"1000"`   // milliseconds
		RequestTimeout  int    `env:"REQUEST_TIMEOUT" envDefault:"30"`     // seconds
	} `envPrefix:"PORTAL_"`
	Legend struct {
		Path string `env:"PATH" envDefault:"name_legend.json"`
	} `envPrefix:"LEGEND_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Redis struct {
		Host              string `env:"HOST" envDefault:"localhost"`
		Port              int    `env:"PORT" envDefault:"6379"`
		Password          string `env:"PASSWORD,required"`
		ConnectTimeout    int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		RunLockExpiration int    `env:"RUN_LOCK_EXPIRATION" envDefault:"1800"` // seconds
	} `envPrefix:"REDIS_"`
	Email struct {
		ReportRecipient string `env:"REPORT_RECIPIENT,required"`
		SMTP            struct {
			Username    string `env:"USERNAME,required"`
			Password    string `env:"PASSWORD,required"`
			Host        string `env:"HOST,required"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// return only the first error to keep the log readable
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}

// ParseSites expands Portal.Sites into the ordered site list a run walks
// through. Malformed pairs are skipped.
func (cfg *Config) ParseSites() []domain.Site {
	sites := make([]domain.Site, 0, 3)
	for _, pair := range strings.Split(cfg.Portal.Sites, ";") {
		id, name, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || id == "" || name == "" {
			continue
		}
		sites = append(sites, domain.Site{ID: id, Name: name})
	}
	return sites
}

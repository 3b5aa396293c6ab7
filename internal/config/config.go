package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	pkgredis "github.com/wichananm65/stylesphere-storefront/pkg/redis"
)

// Timings holds the fixed delays the storefront uses to simulate work.
type Timings struct {
	ToastDuration    time.Duration `envconfig:"TOAST_DURATION" default:"5s"`
	DiscountDelay    time.Duration `envconfig:"DISCOUNT_DELAY" default:"3s"`
	DiscountDuration time.Duration `envconfig:"DISCOUNT_DURATION" default:"8s"`
	TryOnWarmup      time.Duration `envconfig:"TRYON_WARMUP" default:"1500ms"`
	LogResend        time.Duration `envconfig:"LOG_RESEND" default:"2s"`
	TrackingResend   time.Duration `envconfig:"TRACKING_RESEND" default:"3s"`
	SettingsSaved    time.Duration `envconfig:"SETTINGS_SAVED" default:"2s"`
}

// Config holds environment-driven configuration.
type Config struct {
	Addr        string        `envconfig:"STOREFRONT_ADDR" default:":8080"`
	Environment string        `envconfig:"APP_ENV" default:"development"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"stylesphere-demo-secret"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"72h"`
	OrderPrefix string        `envconfig:"ORDER_PREFIX" default:"SS"`

	// SessionSweep is how often sessions idle for longer than TokenTTL are ended.
	SessionSweep time.Duration `envconfig:"SESSION_SWEEP" default:"1m"`

	// DatabaseURL switches the customer order store to Postgres when set.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	// Redis.URL switches the cart store to Redis when set.
	Redis   pkgredis.Config
	CartTTL time.Duration `envconfig:"CART_TTL" default:"24h"`

	Timings
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Env returns the parsed deployment environment.
func (c Config) Env() Environment {
	return ParseEnvironment(c.Environment)
}

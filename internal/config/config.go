package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production           bool          `env:"PRODUCTION" envDefault:"false"`
	Port                 string        `env:"PORT" envDefault:"80"`
	PostgresUrl          string        `env:"POSTGRES_URL,required"`
	RedisUrl             string        `env:"REDIS_URL" envDefault:"redis:6379"`
	JwtTTL               time.Duration `env:"TOKEN_TTL" envDefault:"20m"`
	Secret               string        `env:"SECRET,required"`
	SessionTTl           time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SessionTokenLength   int           `env:"SESSION_TOKEN_LENGTH" envDefault:"32"`
	ClientSecretPath     string        `env:"CLIENT_SECRET_PATH" envDefault:"secrets/client_secret.json"`
	RedirectURL          string        `env:"REDIRECT_URL" envDefault:""`
	ClientType           string        `env:"CLIENT_TYPE" envDefault:"web"`
	MaxFileSize          int64         `env:"MAX_FILE_SIZE" envDefault:"5242880"`
	SMTPHost             string        `env:"SMTP_HOST" envDefault:""`
	SMTPPort             int           `env:"SMTP_PORT" envDefault:"465"`
	SMTPUsername         string        `env:"SMTP_USERNAME" envDefault:""`
	SMTPPassword         string        `env:"SMTP_PASSWORD" envDefault:""`
	MailFrom             string        `env:"MAIL_FROM" envDefault:"agenda@homecare.local"`
	Locale               string        `env:"LOCALE" envDefault:"pt"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func JwtTTL() time.Duration {
	return conf.JwtTTL
}

func Secret() string {
	return conf.Secret
}

func SessionTTl() time.Duration {
	return conf.SessionTTl
}

func SessionTokenLength() int {
	return conf.SessionTokenLength
}

func ClientSecretPath() string {
	return conf.ClientSecretPath
}

func RedirectURL() string {
	return conf.RedirectURL
}

func ClientType() string {
	return conf.ClientType
}

func MaxFileSize() int64 {
	return conf.MaxFileSize
}

func SMTPHost() string {
	return conf.SMTPHost
}

func SMTPPort() int {
	return conf.SMTPPort
}

func SMTPUsername() string {
	return conf.SMTPUsername
}

func SMTPPassword() string {
	return conf.SMTPPassword
}

func MailFrom() string {
	return conf.MailFrom
}

func Locale() string {
	return conf.Locale
}

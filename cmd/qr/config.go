package main

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pborman/getopt/v2"

	qr "github.com/unixdj/qrgen"
	"github.com/unixdj/qrgen/coding"
)

// config holds settings read from the environment, overridden by
// command line flags.
type config struct {
	Level  level  `env:"QR_LEVEL" envDefault:"l"`
	Min    int    `env:"QR_MIN_VERSION" envDefault:"1"`
	Max    int    `env:"QR_MAX_VERSION" envDefault:"40"`
	Border int    `env:"QR_QUIET" envDefault:"4"`
	Scale  int    `env:"QR_SCALE" envDefault:"8"`
	Format string `env:"QR_FORMAT"`
}

// loadConfig parses environ, with variables from the dotenv file
// added where environ lacks them.  A missing dotenv file is ignored.
func loadConfig(dotenv string, environ map[string]string) (config, error) {
	var c config
	if dotenv != "" {
		m, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, err
		}
		for k, v := range m {
			if _, ok := environ[k]; !ok {
				environ[k] = v
			}
		}
	}
	err := env.ParseWithOptions(&c, env.Options{Environment: environ})
	return c, err
}

// level is an error correction level settable from the environment
// and the command line.
type level qr.Level

func (l level) String() string { return qr.Level(l).String() }

func (l *level) UnmarshalText(b []byte) error {
	v, err := coding.ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = level(v)
	return nil
}

func (l *level) Set(s string, _ getopt.Option) error {
	return l.UnmarshalText([]byte(s))
}

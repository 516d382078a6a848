// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once per process and cached by its reflect.Type; ForceReload and
// ResetCache exist for tests. Types that implement validator.Validatable are
// validated before they are cached, so a bad value fails at startup with the
// full error tree.
//
//	type ServerConfig struct {
//		Addr    string        `env:"VALTREE_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"VALTREE_READ_TIMEOUT" envDefault:"10s"`
//	}
//
//	config.MustLoadEnv(".env.local")
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config

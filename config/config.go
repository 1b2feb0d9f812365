package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "MYMARKET_CONFIG_FILE"

type catalog struct {
	Source       string        `mapstructure:"source"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

type storage struct {
	Path string `mapstructure:"path"`
}

type order struct {
	StoreName      string `mapstructure:"store_name"`
	WhatsAppNumber string `mapstructure:"whatsapp_number"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Locale         string     `mapstructure:"locale"`
	Catalog        catalog    `mapstructure:"catalog"`
	Storage        storage    `mapstructure:"storage"`
	Order          order      `mapstructure:"order"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	Locale=%q

	Catalog:
	Source=%q
	FetchTimeout=%q

	Storage:
	Path=%q

	Order:
	StoreName=%q
	WhatsAppNumber=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Locale,
		c.Catalog.Source,
		c.Catalog.FetchTimeout,
		c.Storage.Path,
		c.Order.StoreName,
		c.Order.WhatsAppNumber,
	)
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the whole service configuration, one struct per concern.
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	Redis   *Redis   `json:"redis" yaml:"redis"`
	MySQL   *MySQL   `json:"mysql" yaml:"mysql"`
	Server  *Server  `json:"server" yaml:"server"`
	Scoring *Scoring `json:"scoring" yaml:"scoring"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse %s error: %v", filename, err))
	}
	if conf.Scoring == nil {
		conf.Scoring = &Scoring{}
	}
	conf.Scoring.applyDefaults()

	return &conf
}

// Debug reports whether the service runs in debug mode.
func (c *Config) Debug() bool {
	return c.App != nil && c.App.Debug
}

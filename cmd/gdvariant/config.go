package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

type element struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

type config struct {
	Elements []element `yaml:"elements"`
}

func loadConfig(filename string, cfg *config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// defaultOrder is the kingpin default of the order arguments.
const defaultOrder = 3

// runSettings stores optional run settings read from a YAML file.
// They fill in values the command line left at its defaults.
type runSettings struct {
	// Order is the default matrix order for the matrix, symmetry and
	// spectrum commands.
	Order int `yaml:"order"`
	// Cache is the default bbolt cache file path.
	Cache string `yaml:"cache"`
}

// readSettings reads run settings from a YAML file. An empty filename
// yields empty settings.
func readSettings(fn string) (*runSettings, error) {
	s := &runSettings{}
	if fn == "" {
		return s, nil
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	log.Infof("Read settings from %s", fn)
	return s, nil
}

// apply copies settings into the command-line variables that still
// hold their default values.
func (s *runSettings) apply() {
	if s.Cache != "" && *cacheF == "" {
		*cacheF = s.Cache
	}
	if s.Order != 0 {
		if *matrixOrder == defaultOrder {
			*matrixOrder = s.Order
		}
		if *symmetryOrder == defaultOrder {
			*symmetryOrder = s.Order
		}
		if *spectrumOrder == defaultOrder {
			*spectrumOrder = s.Order
		}
	}
}

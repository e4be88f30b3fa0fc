package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/cwbudde/algo-fixed/measure/accuracy"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type accuracyConfig struct {
	Samples   int
	Workers   int
	Functions []string `toml:",omitempty"`
}

type thdConfig struct {
	SampleRate float64
	Frequency  float64
	Samples    int
	Window     string
}

type fpinfoConfig struct {
	Accuracy accuracyConfig
	THD      thdConfig
}

func defaultConfig() fpinfoConfig {
	acc := accuracy.DefaultConfig()
	return fpinfoConfig{
		Accuracy: accuracyConfig{
			Samples: acc.Samples,
			Workers: acc.Workers,
		},
		THD: thdConfig{
			SampleRate: 48000,
			Frequency:  1000,
			Samples:    48000,
			Window:     "hann",
		},
	}
}

func loadConfig(file string, cfg *fpinfoConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig layers defaults, the config file and global flags.
func makeConfig(ctx *cli.Context) (fpinfoConfig, error) {
	cfg := defaultConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.GlobalIsSet(samplesFlag.Name) {
		cfg.Accuracy.Samples = ctx.GlobalInt(samplesFlag.Name)
	}
	if ctx.GlobalIsSet(workersFlag.Name) {
		cfg.Accuracy.Workers = ctx.GlobalInt(workersFlag.Name)
	}
	return cfg, nil
}

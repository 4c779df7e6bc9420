// Package config loads the vproc settings file.
package config

import (
	"errors"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ezrec/vproc/cpu"
	"github.com/ezrec/vproc/emulator"
	"github.com/ezrec/vproc/translate"
)

var f = translate.From

// Minimum stack size; one word.
const MIN_STACK_SIZE = 8

var (
	ErrStackSize = errors.New(f("stack_size out of range"))
)

// ErrConfig is a failure reading a configuration file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Config holds the run settings of the processor.
type Config struct {
	PrintExecuted bool              `yaml:"print_instructions_executed"`
	Debug         bool              `yaml:"debug"`
	Verbose       bool              `yaml:"verbose"`
	StackSize     int               `yaml:"stack_size"`
	HistoryFile   string            `yaml:"history_file"`
	Language      string            `yaml:"language"`
	Predefine     map[string]string `yaml:"predefine"`
}

// Default returns the default configuration.
func Default() (conf *Config) {
	conf = &Config{
		StackSize: cpu.STACK_SIZE,
	}
	return
}

// Load reads a YAML configuration file over the defaults.
// Unknown keys are rejected.
func Load(path string) (conf *Config, err error) {
	conf = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	err = yaml.UnmarshalStrict(data, conf)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	err = conf.Validate()
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	if conf.Verbose {
		log.Printf("config: loaded %v", path)
	}

	return
}

// Validate checks the settings ranges.
func (conf *Config) Validate() (err error) {
	if conf.StackSize < MIN_STACK_SIZE || conf.StackSize > emulator.MAX_STACK_SIZE {
		err = ErrStackSize
		return
	}

	return
}

// Apply sets the process-wide settings, and configures the emulator.
func (conf *Config) Apply(emu *emulator.Emulator) (err error) {
	if len(conf.Language) != 0 {
		err = translate.SetLanguage(conf.Language)
		if err != nil {
			return
		}
	}

	emu.Verbose = conf.Verbose
	emu.Cpu.PrintExecuted = conf.PrintExecuted

	return
}

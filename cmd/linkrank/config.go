package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vertex-lab/linkrank/pkg/pagerank"
	"github.com/vertex-lab/linkrank/pkg/utils/logger"
)

type SystemConfig struct {
	Log *logger.Aggregate

	// LogWriter is the file opened from LogPath, or os.Stderr when LogPath is empty
	LogPath       string
	LogWriter     io.Writer
	LogLevel      logger.Level
	DisplayConfig bool
}

// The configuration parameters for the system and the estimators.
type Config struct {
	SystemConfig
	Pagerank pagerank.Config
}

func NewSystemConfig() SystemConfig {
	return SystemConfig{
		LogWriter:     os.Stderr,
		LogLevel:      logger.LevelInfo,
		DisplayConfig: false,
	}
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		SystemConfig: NewSystemConfig(),
		Pagerank:     pagerank.NewConfig(),
	}
}

func (c SystemConfig) Print(out io.Writer) {
	fmt.Fprintln(out, "System:")
	fmt.Fprintf(out, "  LogPath: %q\n", c.LogPath)
	fmt.Fprintf(out, "  LogLevel: %v\n", c.LogLevel)
	fmt.Fprintf(out, "  DisplayConfig: %t\n", c.DisplayConfig)
}

func (c *Config) Print(out io.Writer) {
	c.SystemConfig.Print(out)
	c.Pagerank.Print(out)
}

// LoadEnvFile() loads the variables of the file into the enviroment, without
// overriding the ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading env file \"%v\": %w", path, err)
	}
	return nil
}

// LoadConfig() read the variables from the enviroment and parses them into a config struct.
func LoadConfig() (*Config, error) {
	var config = NewConfig()
	var err error

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "LOGS":
			// only a .log file is used; otherwise logs remain on os.Stderr
			if strings.HasSuffix(val, ".log") {
				config.LogPath = val
			}

		case "LOG_LEVEL":
			config.LogLevel, err = logger.ParseLevel(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "DISPLAY_CONFIG":
			config.DisplayConfig, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "DAMPING":
			config.Pagerank.Damping, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SAMPLES":
			config.Pagerank.Samples, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "THRESHOLD":
			config.Pagerank.Threshold, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "MAX_ITERATIONS":
			config.Pagerank.MaxIterations, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "TRIALS":
			config.Pagerank.Trials, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SEED":
			config.Pagerank.Seed, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}
		}
	}

	// the file is opened last, so that no parsing error can leave it open
	if config.LogPath != "" {
		var file *os.File
		config.Log, file, err = logger.Init(config.LogPath)
		if err != nil {
			return nil, err
		}
		config.LogWriter = file
	} else {
		config.Log = logger.New(config.LogWriter)
	}

	config.Log.SetLevel(config.LogLevel)
	config.Pagerank.Log = config.Log
	return config, nil
}

// CloseLogs() closes the config.LogWriter if that is a file.
func (c *Config) CloseLogs() {
	if file, ok := c.LogWriter.(*os.File); ok && file != os.Stdout && file != os.Stderr {
		file.Close()
	}
}

package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	Addr        string // websocket listen address
	ReadBuffer  int
	WriteBuffer int

	LogLevel  string
	LogFormat string // text | json

	MaterialSeed string // IDF file whose materials seed the registry

	Compat Compat
}

// Compat holds the versions of the companion toolkits checked before every
// build. The check is skipped unless Enabled.
type Compat struct {
	Enabled           bool
	HoneybeeRequired  string
	HoneybeeInstalled string
	LadybugRequired   string
	LadybugInstalled  string
}

// Load reads the ini file at path. A missing file, or an empty path, yields
// the defaults.
func Load(path string) (Config, error) {
	var sources []interface{}
	if path != "" {
		sources = append(sources, path)
	}
	file, err := ini.LooseLoad([]byte{}, sources...)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) Config {
	server := file.Section("server")
	logging := file.Section("log")
	compat := file.Section("compat")
	return Config{
		Addr:         server.Key("addr").MustString(":9000"),
		ReadBuffer:   server.Key("read_buffer").MustInt(1024),
		WriteBuffer:  server.Key("write_buffer").MustInt(1024),
		LogLevel:     logging.Key("level").MustString("info"),
		LogFormat:    logging.Key("format").MustString("text"),
		MaterialSeed: file.Section("registry").Key("seed").String(),
		Compat: Compat{
			Enabled:           compat.Key("enabled").MustBool(false),
			HoneybeeRequired:  compat.Key("honeybee_required").MustString("0.0.56"),
			HoneybeeInstalled: compat.Key("honeybee_installed").String(),
			LadybugRequired:   compat.Key("ladybug_required").MustString("0.0.59"),
			LadybugInstalled:  compat.Key("ladybug_installed").String(),
		},
	}
}

// SetupLogging applies the log level and format to the standard logrus
// logger.
func (c Config) SetupLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	switch c.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("log format %q, expected text or json", c.LogFormat)
	}
	return nil
}

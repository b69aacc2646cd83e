package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a service address, host:port or URL
//	-request-timeout transfer timeout (e.g. "30s"), 0 disables it
//	-o download directory for saved artifacts
//	-log-file log file path
//	-log-level log level
//	-mode tui | encode | decode
//	-carrier carrier PNG for headless encode
//	-secret secret file for headless encode
//	-encoded encoded PNG for headless decode
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("stegasaur", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address        string
		requestTimeout time.Duration
		downloadDir    string
		logFile        string
		logLevel       string
		mode           string
		carrier        string
		secret         string
		encoded        string
		jsonConfigPath string
	)

	fs.StringVar(&address, "a", "", "Steganography service address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Transfer timeout (e.g., 30s, 1m)")
	fs.StringVar(&downloadDir, "o", "", "Directory saved artifacts are written to")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&mode, "mode", "", "Run mode: tui, encode or decode")
	fs.StringVar(&carrier, "carrier", "", "Carrier PNG (headless encode)")
	fs.StringVar(&secret, "secret", "", "Secret file (headless encode)")
	fs.StringVar(&encoded, "encoded", "", "Encoded PNG (headless decode)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DownloadDir: downloadDir,
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
		},
		Run: Run{
			Mode:    mode,
			Carrier: carrier,
			Secret:  secret,
			Encoded: encoded,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

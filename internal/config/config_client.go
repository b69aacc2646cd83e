package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// RunMode selects how the client runs.
type RunMode string

const (
	// RunModeTUI starts the interactive terminal UI.
	RunModeTUI RunMode = "tui"
	// RunModeEncode runs one encode without the UI.
	RunModeEncode RunMode = "encode"
	// RunModeDecode runs one decode without the UI.
	RunModeDecode RunMode = "decode"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the steganography service address.
	HTTPAddress string
	// RequestTimeout bounds a single transfer; zero means no timeout.
	RequestTimeout time.Duration
}

// ClientStorage holds where artifacts are saved.
type ClientStorage struct {
	DownloadDir string
}

// ClientLog holds log settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientRun holds the run mode and headless inputs.
type ClientRun struct {
	Mode    RunMode
	Carrier string
	Secret  string
	Encoded string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Log     ClientLog
	Run     ClientRun
}

// GetClientConfig builds and validates the client config from the process
// environment and command line.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig is [GetClientConfig] for explicit arguments.
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DownloadDir: cfg.Storage.DownloadDir,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
		Run: ClientRun{
			Mode:    RunMode(strings.ToLower(strings.TrimSpace(cfg.Run.Mode))),
			Carrier: cfg.Run.Carrier,
			Secret:  cfg.Run.Secret,
			Encoded: cfg.Run.Encoded,
		},
	}

	return clientCfg, clientCfg.validate()
}

package main

import (
	"io/ioutil"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// configEnv overrides the config path; the default is oscsurf.yml in
// REAPER's working directory.
const configEnv = "OSCSURF_CONFIG"

type config struct {
	Addr      string `yaml:"addr"`
	Port      int    `yaml:"port"`
	SendPeaks bool   `yaml:"send_peaks"`
	// PeakRing sizes the audio-to-main event ring, in bytes.
	PeakRing int `yaml:"peak_ring"`
}

func defaultConfig() config {
	return config{
		Addr:     "127.0.0.1",
		Port:     8000,
		PeakRing: 4096,
	}
}

// loadConfig never fails: a missing or broken file means defaults, so a
// bad config can't keep the extension from loading.
func loadConfig(logger *zap.Logger) config {
	cfg := defaultConfig()
	path := os.Getenv(configEnv)
	if path == "" {
		path = "oscsurf.yml"
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("couldn't read config, using defaults",
				zap.String("path", path), zap.Error(err))
		}
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Warn("couldn't parse config, using defaults",
			zap.String("path", path), zap.Error(err))
		return defaultConfig()
	}
	if cfg.PeakRing < 64 {
		cfg.PeakRing = 64
	}
	logger.Info("config loaded", zap.String("path", path),
		zap.String("addr", cfg.Addr), zap.Int("port", cfg.Port),
		zap.Bool("send_peaks", cfg.SendPeaks))
	return cfg
}

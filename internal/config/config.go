package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	MarketData struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"market_data"`
	Scan struct {
		Cron     string   `yaml:"cron"`
		Universe []string `yaml:"universe"`
		BarLimit int      `yaml:"bar_limit"`
		Workers  int      `yaml:"workers"`
	} `yaml:"scan"`
	Outcome struct {
		Cron    string `yaml:"cron"`
		Workers int    `yaml:"workers"`
	} `yaml:"outcome"`
	Notify struct {
		CooldownMinutes int `yaml:"cooldown_minutes"`
	} `yaml:"notify"`
	Websocket struct {
		PushIntervalSeconds int `yaml:"push_interval_seconds"`
	} `yaml:"websocket"`

	// Engine thresholds; zero values fall back to the documented defaults.
	Engine domain.ScanConfig `yaml:"engine"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; env and defaults carry.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("MARKET_DATA_BASE_URL"); v != "" {
		cfg.MarketData.BaseURL = v
	}
	if v := os.Getenv("MARKET_DATA_API_KEY"); v != "" {
		cfg.MarketData.APIKey = v
	}
	if v := os.Getenv("SCAN_UNIVERSE"); v != "" {
		parts := strings.Split(v, ",")
		universe := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				universe = append(universe, strings.ToUpper(s))
			}
		}
		cfg.Scan.Universe = universe
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("OUTCOME_CRON"); v != "" {
		cfg.Outcome.Cron = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.MarketData.TimeoutSeconds <= 0 {
		cfg.MarketData.TimeoutSeconds = 15
	}
	if cfg.Scan.Cron == "" {
		cfg.Scan.Cron = "0 30 21 * * 1-5" // after US market close
	}
	if cfg.Outcome.Cron == "" {
		cfg.Outcome.Cron = "0 0 22 * * 1-5"
	}
	if cfg.Scan.BarLimit <= 0 {
		cfg.Scan.BarLimit = 250
	}
	if cfg.Scan.Workers <= 0 {
		cfg.Scan.Workers = 10
	}
	if cfg.Outcome.Workers <= 0 {
		cfg.Outcome.Workers = 10
	}
	if cfg.Notify.CooldownMinutes <= 0 {
		cfg.Notify.CooldownMinutes = 60
	}
	if cfg.Websocket.PushIntervalSeconds <= 0 {
		cfg.Websocket.PushIntervalSeconds = 5
	}
	applyEngineDefaults(&cfg.Engine)

	return cfg, nil
}

// applyEngineDefaults fills any unset engine threshold with its documented
// default, so a partial engine section in YAML works.
func applyEngineDefaults(engine *domain.ScanConfig) {
	defaults := domain.DefaultScanConfig()

	if engine.RSIPeriod <= 0 {
		engine.RSIPeriod = defaults.RSIPeriod
	}
	if engine.MACDFast <= 0 {
		engine.MACDFast = defaults.MACDFast
	}
	if engine.MACDSlow <= 0 {
		engine.MACDSlow = defaults.MACDSlow
	}
	if engine.MACDSignal <= 0 {
		engine.MACDSignal = defaults.MACDSignal
	}
	if engine.BBPeriod <= 0 {
		engine.BBPeriod = defaults.BBPeriod
	}
	if engine.ATRPeriod <= 0 {
		engine.ATRPeriod = defaults.ATRPeriod
	}
	if engine.VWAPWindow <= 0 {
		engine.VWAPWindow = defaults.VWAPWindow
	}
	if engine.FibLookback <= 0 {
		engine.FibLookback = defaults.FibLookback
	}
	if engine.VolumeAvgPeriod <= 0 {
		engine.VolumeAvgPeriod = defaults.VolumeAvgPeriod
	}
	if engine.BBMultiplier <= 0 {
		engine.BBMultiplier = defaults.BBMultiplier
	}
	if engine.VWAPDiscount <= 0 {
		engine.VWAPDiscount = defaults.VWAPDiscount
	}
	if engine.VWAPBandFloor <= 0 {
		engine.VWAPBandFloor = defaults.VWAPBandFloor
	}
	if engine.VWAPBandCeil <= 0 {
		engine.VWAPBandCeil = defaults.VWAPBandCeil
	}
	if engine.RSIOversold <= 0 {
		engine.RSIOversold = defaults.RSIOversold
	}
	if engine.RSIOverbought <= 0 {
		engine.RSIOverbought = defaults.RSIOverbought
	}
	if engine.BBProximityPct <= 0 {
		engine.BBProximityPct = defaults.BBProximityPct
	}
	if engine.RSIBandFloor <= 0 {
		engine.RSIBandFloor = defaults.RSIBandFloor
	}
	if engine.RSIBandCeil <= 0 {
		engine.RSIBandCeil = defaults.RSIBandCeil
	}
	if engine.PivotBandFloor <= 0 {
		engine.PivotBandFloor = defaults.PivotBandFloor
	}
	if engine.PivotBandCeil <= 0 {
		engine.PivotBandCeil = defaults.PivotBandCeil
	}
	if engine.DefaultBandFloor <= 0 {
		engine.DefaultBandFloor = defaults.DefaultBandFloor
	}
	if engine.DefaultBandCeil <= 0 {
		engine.DefaultBandCeil = defaults.DefaultBandCeil
	}
	if engine.PullbackBandFloor <= 0 {
		engine.PullbackBandFloor = defaults.PullbackBandFloor
	}
	if engine.PullbackBandCeil <= 0 {
		engine.PullbackBandCeil = defaults.PullbackBandCeil
	}
	if engine.HighVolATRPct <= 0 {
		engine.HighVolATRPct = defaults.HighVolATRPct
	}
	if engine.LowVolATRPct <= 0 {
		engine.LowVolATRPct = defaults.LowVolATRPct
	}
	if engine.HighVolMultiplier <= 0 {
		engine.HighVolMultiplier = defaults.HighVolMultiplier
	}
	if engine.LowVolMultiplier <= 0 {
		engine.LowVolMultiplier = defaults.LowVolMultiplier
	}
	if engine.TargetFallbackPct <= 0 {
		engine.TargetFallbackPct = defaults.TargetFallbackPct
	}
	if engine.StopSupportPct <= 0 {
		engine.StopSupportPct = defaults.StopSupportPct
	}
	if engine.StopFallbackPct <= 0 {
		engine.StopFallbackPct = defaults.StopFallbackPct
	}
	if engine.Weights == (domain.ScoringWeights{}) {
		engine.Weights = defaults.Weights
	}
	if engine.Cutoffs == (domain.ClassifierCutoffs{}) {
		engine.Cutoffs = defaults.Cutoffs
	}
	if engine.OutcomeHorizonDays <= 0 {
		engine.OutcomeHorizonDays = defaults.OutcomeHorizonDays
	}
}

package tsid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvNode     = "TSID_NODE"
	EnvNodeBits = "TSID_NODE_BITS"
	EnvEpoch    = "TSID_EPOCH"
)

// Config carries the construction-time knobs of a Generator in a form that
// embeds into application config files. Nil fields keep the package
// defaults, so a zero Config builds the same generator as NewGenerator with
// no options.
type Config struct {
	// Node pins the node identifier; nil draws a random one.
	Node *int `json:"node" yaml:"node"`

	// NodeBits sets the node field width, 0 through 20; nil means 10.
	NodeBits *int `json:"node_bits" yaml:"node_bits"`

	// Epoch moves time zero of the embedded timestamp; nil keeps
	// 2020-01-01T00:00:00Z.
	Epoch *time.Time `json:"epoch" yaml:"epoch"`
}

// ParseConfig decodes a YAML document (JSON is valid YAML) into a Config.
// Unknown keys are rejected; an empty document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("tsid: parse config: %w", err)
	}
	return cfg, nil
}

// ConfigFromEnv reads TSID_NODE, TSID_NODE_BITS and TSID_EPOCH. Unset or
// empty variables leave the corresponding field nil. TSID_EPOCH accepts
// Unix milliseconds or RFC 3339 text.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if v := os.Getenv(EnvNode); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("tsid: %s: %w", EnvNode, err)
		}
		cfg.Node = &n
	}
	if v := os.Getenv(EnvNodeBits); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("tsid: %s: %w", EnvNodeBits, err)
		}
		cfg.NodeBits = &n
	}
	if v := os.Getenv(EnvEpoch); v != "" {
		t, err := parseEpoch(v)
		if err != nil {
			return Config{}, fmt.Errorf("tsid: %s: %w", EnvEpoch, err)
		}
		cfg.Epoch = &t
	}
	return cfg, nil
}

func parseEpoch(v string) (time.Time, error) {
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Parse(time.RFC3339, v)
}

// NewGeneratorFromConfig builds a Generator from cfg, applying opts (such
// as WithClock or WithRandom) on top.
func NewGeneratorFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	combined := make([]Option, 0, len(opts)+3)
	if cfg.Node != nil {
		combined = append(combined, WithNode(*cfg.Node))
	}
	if cfg.NodeBits != nil {
		combined = append(combined, WithNodeBits(*cfg.NodeBits))
	}
	if cfg.Epoch != nil {
		combined = append(combined, WithEpoch(*cfg.Epoch))
	}
	combined = append(combined, opts...)
	return NewGenerator(combined...)
}

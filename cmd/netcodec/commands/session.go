// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"
	"os"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/codec"
	"github.com/bureau-foundation/netcodec/lib/config"
)

// commonParams are accepted by every command that touches a body.
type commonParams struct {
	Config  string `json:"config"  flag:"config"    desc:"configuration file (default: $NETCODEC_CONFIG, else built-in tables)"`
	Verbose bool   `json:"verbose" flag:"verbose,v" desc:"log codec activity at debug level"`
}

// session is the state a command run shares: the loaded configuration
// and the codec built from its tables.
type session struct {
	config *config.Config
	codec  *codec.Codec
	logger *slog.Logger
}

func (p *commonParams) open() (*session, error) {
	logger := cli.NewCommandLogger(p.Verbose)

	cfg, err := p.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration:\n%w", err)
	}
	md, err := cfg.Metadata()
	if err != nil {
		return nil, cli.Validation("building metadata tables: %w", err)
	}
	logger.Debug("metadata loaded",
		"default_namespace", md.DefaultNamespace(),
		"plurals", len(md.Tables().Plurals),
		"extension_namespaces", len(md.Tables().ExtensionNamespaces),
	)

	return &session{
		config: cfg,
		codec:  codec.New(md, logger),
		logger: logger,
	}, nil
}

// loadConfig picks --config, then $NETCODEC_CONFIG, then the built-in
// defaults.
func (p *commonParams) loadConfig() (*config.Config, error) {
	path := p.Config
	if path == "" {
		path = os.Getenv(config.EnvironmentVariable)
	}
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cli.NotFound("configuration file %s does not exist", path)
		}
		return nil, cli.Validation("loading configuration: %w", err)
	}
	return cfg, nil
}

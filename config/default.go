package config

import _ "embed"

// DefaultConfigYAML is the embedded default configuration; an external
// config file or CHAUFFEUR_* environment variables override it.
//
//go:embed default.yaml
var DefaultConfigYAML []byte

package crypt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sem-hub/snake-rc/internal/configs"
	"github.com/sem-hub/snake-rc/internal/crypt/engines"

	// Registers the rc5 and rc6 engines.
	_ "github.com/sem-hub/snake-rc/internal/crypt/engines/ciphers"
)

var logger *configs.ColorLogger = nil

// CreateEngine builds a byte-stream crypto engine. Width and rounds of 0
// select per-engine defaults; the key is used as raw key material, its
// length (up to 255 bytes) becoming the schedule's key length.
func CreateEngine(name, mode string, width, rounds int, key []byte) (engines.CryptoEngine, error) {
	if logger == nil {
		logger = configs.InitLogger("cipher")
	}
	name = strings.ToLower(name)
	if !engines.IsEngineSupported(name) {
		return nil, errors.New("unsupported cryptographic engine: " + name)
	}
	ctor, ok := engines.GetEngine(name)
	if !ok {
		return nil, errors.New("engine not registered: " + name)
	}
	engine, err := ctor(key, width, rounds, mode)
	if err != nil {
		logger.Error("Failed to create engine", "engine", name, "error", err)
		return nil, err
	}
	logger.Debug("Created engine", "engine", engine.GetName(), "width", width, "rounds", rounds)
	return engine, nil
}

// ParseEngineSpec splits an engine specification of the form
// name[-width][-mode], e.g. "rc6-64-ctr" or "rc5-ctr". Missing parts come
// back as zero values.
func ParseEngineSpec(spec string) (name string, width int, mode string, err error) {
	parts := strings.Split(strings.ToLower(spec), "-")
	if len(parts) == 0 || parts[0] == "" {
		return "", 0, "", errors.New("empty engine specification")
	}
	name = parts[0]
	rest := parts[1:]
	if len(rest) > 0 {
		if n, convErr := strconv.Atoi(rest[0]); convErr == nil {
			width = n
			rest = rest[1:]
		}
	}
	if len(rest) > 1 {
		return "", 0, "", errors.New("invalid engine specification: " + spec)
	}
	if len(rest) == 1 {
		mode = rest[0]
	}
	return name, width, mode, nil
}

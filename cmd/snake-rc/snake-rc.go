package main

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/sem-hub/snake-rc/internal/configs"
	"github.com/sem-hub/snake-rc/internal/crypt"
	"github.com/sem-hub/snake-rc/internal/rc"
)

type logType map[string]string

var (
	cfg        *configs.ConfigFile
	configFile string
	variant    string
	width      int
	rounds     int
	keyHex     string
	keyLen     int
	mode       string
	defaultLog string
	logLevel   logType
)

var flagAlias = map[string]string{
	"config":  "c",
	"debug":   "d",
	"log":     "D",
	"variant": "e",
	"key":     "k",
	"keylen":  "b",
	"mode":    "m",
	"rounds":  "r",
	"width":   "w",
}

func isFlagPresent(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func checkLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "error":
		return false
	default:
		return true
	}
}

// New type for flag parsing
func (i *logType) String() string {
	return fmt.Sprint(*i)
}

func (i *logType) Set(value string) error {
	for _, logStr := range strings.Split(value, ",") {
		parts := strings.SplitN(logStr, "=", 2)
		if len(parts) != 2 || checkLogLevel(parts[1]) {
			return fmt.Errorf("invalid log level format: %s", logStr)
		}
		(*i)[parts[0]] = parts[1]
	}
	return nil
}

func init() {
	logLevel = make(map[string]string)
	flag.StringVar(&configFile, "config", "", "Path to config file.")
	flag.StringVar(&variant, "variant", "", "Cipher variant: rc5 or rc6, optionally with width and mode, e.g. rc6-64-ctr.")
	flag.IntVar(&width, "width", 0, "Word width in bits (8, 16, 32, 64 or 128).")
	flag.IntVar(&rounds, "rounds", 0, "Round count, a multiple of 4 in 0..255 (0 selects the variant default).")
	flag.StringVar(&keyHex, "key", "", "Key bytes in hex (up to 255 bytes).")
	flag.IntVar(&keyLen, "keylen", 16, "Key length in bytes for keygen.")
	flag.StringVar(&mode, "mode", "", "Byte-stream mode for file operations (ctr).")
	flag.StringVar(&defaultLog, "debug", "Info", "Default logging level for all modules.")
	flag.Var(&logLevel, "log", "Logging levels may be overridden by this.")
	// Setup flag aliases
	for from, to := range flagAlias {
		flagSet := flag.Lookup(from)
		flag.Var(flagSet.Value, to, fmt.Sprintf("alias to %s", flagSet.Name))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: snake-rc [flags] vectors | keygen | encrypt <hexblock> | decrypt <hexblock> | encrypt-file <in> <out> | decrypt-file <in> <out>")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
	}

	// Three-step configuration parsing: defaults, then config file, then
	// command line switches.
	cfg = configs.GetConfigFile()
	cfg.Cipher.Variant = "rc5"
	cfg.Cipher.Width = 64
	cfg.Cipher.Mode = "ctr"
	if defaultLog == "" {
		defaultLog = "Info"
	}
	cfg.Log.Main = defaultLog
	cfg.Log.Cipher = defaultLog
	cfg.Log.Engines = defaultLog
	cfg.Log.Bench = defaultLog

	if configFile != "" {
		if _, err := toml.DecodeFile(configFile, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to decode config file:", err)
			os.Exit(1)
		}
	}

	logger := configs.InitLogger("main")

	if variant != "" {
		name, w, m, err := crypt.ParseEngineSpec(variant)
		if err != nil {
			logger.Fatal("Bad variant", "error", err)
		}
		cfg.Cipher.Variant = name
		if w != 0 {
			cfg.Cipher.Width = w
		}
		if m != "" {
			cfg.Cipher.Mode = m
		}
	}
	if isFlagPresent("width") || isFlagPresent("w") {
		cfg.Cipher.Width = width
	}
	if isFlagPresent("rounds") || isFlagPresent("r") {
		cfg.Cipher.Rounds = rounds
	}
	if keyHex != "" {
		cfg.Cipher.Key = keyHex
	}
	if mode != "" {
		cfg.Cipher.Mode = mode
	}

	// Override log levels with command line switches
	for module, level := range logLevel {
		switch module {
		case "main":
			cfg.Log.Main = level
		case "cipher":
			cfg.Log.Cipher = level
		case "engines":
			cfg.Log.Engines = level
		case "bench":
			cfg.Log.Bench = level
		default:
			logger.Warn("Unknown module for log level override", "module", module)
		}
	}
	logger = configs.ReinitLogger("main")

	switch flag.Arg(0) {
	case "vectors":
		printVectors(cfg.Cipher.Width)
	case "keygen":
		if keyLen < 0 || keyLen > 255 {
			logger.Fatal("Key length must be in 0..255", "keylen", keyLen)
		}
		key := make([]byte, keyLen)
		rand.Read(key)
		fmt.Println("Key ID: ", uuid.New().String())
		fmt.Println("Key:    ", hex.EncodeToString(key))
	case "encrypt", "decrypt":
		if flag.NArg() != 2 {
			usage()
		}
		blockOp(logger, flag.Arg(0), flag.Arg(1))
	case "encrypt-file", "decrypt-file":
		if flag.NArg() != 3 {
			usage()
		}
		fileOp(logger, flag.Arg(0), flag.Arg(1), flag.Arg(2))
	default:
		logger.Error("Unknown operation", "op", flag.Arg(0))
		usage()
	}
}

func parseKey(logger *configs.ColorLogger) []byte {
	key, err := hex.DecodeString(cfg.Cipher.Key)
	if err != nil {
		logger.Fatal("Key must be hex encoded", "error", err)
	}
	return key
}

// blockOp runs a single raw block through the cipher, no mode, no IV.
func blockOp(logger *configs.ColorLogger, op, blockHex string) {
	key := parseKey(logger)
	block, err := newBlockCipher(key)
	if err != nil {
		logger.Fatal("Unsupported parameters", "error", err)
	}
	buf, err := hex.DecodeString(blockHex)
	if err != nil {
		logger.Fatal("Block must be hex encoded", "error", err)
	}
	if len(buf) != block.BlockSize() {
		logger.Fatal("Wrong block length", "got", len(buf), "want", block.BlockSize())
	}
	if op == "encrypt" {
		block.Encrypt(buf, buf)
	} else {
		block.Decrypt(buf, buf)
	}
	fmt.Println(hex.EncodeToString(buf))
}

func fileOp(logger *configs.ColorLogger, op, in, out string) {
	key := parseKey(logger)
	engine, err := crypt.CreateEngine(cfg.Cipher.Variant, cfg.Cipher.Mode, cfg.Cipher.Width, cfg.Cipher.Rounds, key)
	if err != nil {
		logger.Fatal("Failed to create engine", "error", err)
	}
	data, err := os.ReadFile(in)
	if err != nil {
		logger.Fatal("Read failed", "file", in, "error", err)
	}
	var result []byte
	if op == "encrypt-file" {
		result, err = engine.Encrypt(data)
	} else {
		result, err = engine.Decrypt(data)
	}
	if err != nil {
		logger.Fatal("Cipher operation failed", "error", err)
	}
	if err := os.WriteFile(out, result, 0600); err != nil {
		logger.Fatal("Write failed", "file", out, "error", err)
	}
	logger.Info("Done", "in", len(data), "out", len(result))
}

func newBlockCipher(key []byte) (cipher.Block, error) {
	r := cfg.Cipher.Rounds
	if cfg.Cipher.Variant == "rc6" {
		if r == 0 {
			r = 20
		}
		return rc.NewRC6(cfg.Cipher.Width, r, key)
	}
	if r == 0 {
		r = 16
	}
	return rc.NewRC5(cfg.Cipher.Width, r, key)
}

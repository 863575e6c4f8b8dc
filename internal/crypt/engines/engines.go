package engines

import (
	"slices"

	"github.com/sem-hub/snake-rc/internal/configs"
)

var EnginesList = []string{
	"rc5",
	"rc6",
}

var ModesList = []string{
	"ctr",
}

// WidthsList holds the word sizes the engines accept, in bits.
var WidthsList = []int{8, 16, 32, 64, 128}

type EngineData struct {
	Name   string
	Type   string
	Logger *configs.ColorLogger
}

type CryptoEngine interface {
	Encrypt([]byte) ([]byte, error)
	Decrypt([]byte) ([]byte, error)
	GetName() string
	GetType() string
	GetWidths() []int
}

// EngineCtor builds an engine for a key, word width in bits, round count and
// byte-stream mode. Width 0 and rounds 0 select the engine's defaults.
type EngineCtor func(key []byte, width, rounds int, mode string) (CryptoEngine, error)

var registry = map[string]EngineCtor{}

func RegisterEngine(name string, ctor EngineCtor) {
	registry[name] = ctor
}

func GetEngine(name string) (EngineCtor, bool) {
	ctor, ok := registry[name]
	return ctor, ok
}

func NewEngineData(Name, Type string) *EngineData {
	return &EngineData{
		Name:   Name,
		Type:   Type,
		Logger: configs.InitLogger("engines"),
	}
}

func IsEngineSupported(engine string) bool {
	return slices.Contains(EnginesList, engine)
}

func IsModeSupported(mode string) bool {
	return slices.Contains(ModesList, mode)
}

func IsWidthSupported(width int) bool {
	return slices.Contains(WidthsList, width)
}

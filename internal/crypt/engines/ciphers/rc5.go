package ciphers

import (
	"crypto/cipher"

	"github.com/sem-hub/snake-rc/internal/crypt/engines"
	"github.com/sem-hub/snake-rc/internal/rc"
)

func init() {
	engines.RegisterEngine("rc5", func(key []byte, width, rounds int, mode string) (engines.CryptoEngine, error) {
		return NewRc5Engine(key, width, rounds, mode)
	})
}

type Rc5Engine struct {
	modes  *Modes
	width  int
	rounds int
}

func NewRc5Engine(key []byte, width, rounds int, mode string) (*Rc5Engine, error) {
	engine := Rc5Engine{width: width, rounds: rounds}

	if width == 0 {
		engine.width = 64
	}
	if rounds == 0 {
		engine.rounds = 16
	}
	if !engines.IsWidthSupported(engine.width) {
		return nil, rc.ErrUnsupportedParams
	}
	var err error
	engine.modes, err = NewModes("RC5", mode, key, engine.NewCipher, engine.BlockSize)
	if err != nil {
		return nil, err
	}
	// Fail at construction, not on first use.
	if _, err = engine.NewCipher(); err != nil {
		return nil, err
	}
	return &engine, nil
}

func (e *Rc5Engine) GetName() string {
	return e.modes.GetName()
}

func (e *Rc5Engine) GetType() string {
	return e.modes.GetType()
}

func (e *Rc5Engine) GetWidths() []int {
	return engines.WidthsList
}

func (e *Rc5Engine) BlockSize() int {
	return 2 * e.width / 8
}

func (e *Rc5Engine) NewCipher() (cipher.Block, error) {
	return rc.NewRC5(e.width, e.rounds, e.modes.Key)
}

func (e *Rc5Engine) Encrypt(data []byte) ([]byte, error) {
	return e.modes.Encrypt(data)
}

func (e *Rc5Engine) Decrypt(data []byte) ([]byte, error) {
	return e.modes.Decrypt(data)
}

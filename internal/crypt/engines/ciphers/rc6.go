package ciphers

import (
	"crypto/cipher"

	"github.com/sem-hub/snake-rc/internal/crypt/engines"
	"github.com/sem-hub/snake-rc/internal/rc"
)

func init() {
	engines.RegisterEngine("rc6", func(key []byte, width, rounds int, mode string) (engines.CryptoEngine, error) {
		return NewRc6Engine(key, width, rounds, mode)
	})
}

type Rc6Engine struct {
	modes  *Modes
	width  int
	rounds int
}

func NewRc6Engine(key []byte, width, rounds int, mode string) (*Rc6Engine, error) {
	engine := Rc6Engine{width: width, rounds: rounds}

	if width == 0 {
		engine.width = 32
	}
	if rounds == 0 {
		engine.rounds = 20
	}
	if !engines.IsWidthSupported(engine.width) {
		return nil, rc.ErrUnsupportedParams
	}
	var err error
	engine.modes, err = NewModes("RC6", mode, key, engine.NewCipher, engine.BlockSize)
	if err != nil {
		return nil, err
	}
	if _, err = engine.NewCipher(); err != nil {
		return nil, err
	}
	return &engine, nil
}

func (e *Rc6Engine) GetName() string {
	return e.modes.GetName()
}

func (e *Rc6Engine) GetType() string {
	return e.modes.GetType()
}

func (e *Rc6Engine) GetWidths() []int {
	return engines.WidthsList
}

func (e *Rc6Engine) BlockSize() int {
	return 4 * e.width / 8
}

func (e *Rc6Engine) NewCipher() (cipher.Block, error) {
	return rc.NewRC6(e.width, e.rounds, e.modes.Key)
}

func (e *Rc6Engine) Encrypt(data []byte) ([]byte, error) {
	return e.modes.Encrypt(data)
}

func (e *Rc6Engine) Decrypt(data []byte) ([]byte, error) {
	return e.modes.Decrypt(data)
}

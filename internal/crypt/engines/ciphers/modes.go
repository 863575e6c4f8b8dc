package ciphers

import (
	"crypto/cipher"
	"errors"

	"github.com/sem-hub/snake-rc/internal/crypt/engines"
	"github.com/sem-hub/snake-rc/internal/crypt/engines/stream"
)

type Modes struct {
	engines.EngineData
	stream.StreamEngine
	Key       []byte
	Mode      string
	NewCipher func() (cipher.Block, error)
	BlockSize func() int
}

func NewModes(name, mode string, key []byte,
	newCipherFunc func() (cipher.Block, error), blockSizeFunc func() int) (*Modes, error) {
	if !engines.IsModeSupported(mode) {
		return nil, errors.New("unsupported mode")
	}

	engine := Modes{}
	engine.StreamEngine = *stream.NewStreamEngine(name + "-" + mode)
	engine.EngineData = engine.StreamEngine.EngineData
	engine.Mode = mode
	engine.Key = key
	engine.NewCipher = newCipherFunc
	engine.BlockSize = blockSizeFunc
	return &engine, nil
}

func (e *Modes) GetName() string {
	return e.EngineData.Name
}

func (e *Modes) GetType() string {
	return e.EngineData.Type
}

func (e *Modes) NewStream(iv []byte) (cipher.Stream, error) {
	block, err := e.NewCipher()
	if err != nil {
		return nil, err
	}
	if e.Mode == "ctr" {
		return cipher.NewCTR(block, iv), nil
	}
	return nil, errors.New("unsupported mode")
}

func (e *Modes) Encrypt(data []byte) ([]byte, error) {
	e.Logger.Debug("Encrypt", "datalen", len(data))
	if e.Mode == "ctr" {
		return e.StreamEngine.StreamEncrypt(e.BlockSize(), e.NewStream, data)
	}
	return nil, errors.New("unsupported mode")
}

func (e *Modes) Decrypt(data []byte) ([]byte, error) {
	e.Logger.Debug("Decrypt", "datalen", len(data))
	if e.Mode == "ctr" {
		return e.StreamEngine.StreamDecrypt(e.BlockSize(), e.NewStream, data)
	}
	return nil, errors.New("unsupported mode")
}

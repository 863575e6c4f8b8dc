package stream

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"github.com/sem-hub/snake-rc/internal/crypt/engines"
)

// StreamEngine turns a block cipher into a byte-stream transform. The IV is
// generated per message and carried as a prefix of the ciphertext, so no
// padding is involved.
type StreamEngine struct {
	engines.EngineData
}

func NewStreamEngine(name string) *StreamEngine {
	engine := StreamEngine{}
	engine.EngineData = *engines.NewEngineData(name, "stream")
	return &engine
}

func (e *StreamEngine) StreamEncrypt(blockSize int, newStream func(iv []byte) (cipher.Stream, error), data []byte) ([]byte, error) {
	e.Logger.Debug("StreamEncrypt", "datalen", len(data))

	iv := make([]byte, blockSize)
	rand.Read(iv)
	stream, err := newStream(iv)
	if err != nil {
		return nil, err
	}

	bufOut := make([]byte, len(data)+len(iv))
	// copy iv to output buf
	copy(bufOut[:blockSize], iv)

	stream.XORKeyStream(bufOut[blockSize:], data)
	e.Logger.Debug("StreamEncrypt", "encryptedlen", len(bufOut))
	return bufOut, nil
}

func (e *StreamEngine) StreamDecrypt(blockSize int, newStream func(iv []byte) (cipher.Stream, error), data []byte) ([]byte, error) {
	e.Logger.Debug("StreamDecrypt", "datalen", len(data))

	if len(data) < blockSize {
		e.Logger.Error("Data too short for this cipher", "datalen", len(data), "blocksize", blockSize)
		return nil, errors.New("data is too short for this cipher")
	}

	iv := make([]byte, blockSize)
	copy(iv, data[:blockSize])
	stream, err := newStream(iv)
	if err != nil {
		return nil, err
	}

	bufOut := make([]byte, len(data)-len(iv))
	stream.XORKeyStream(bufOut, data[blockSize:])
	e.Logger.Debug("StreamDecrypt", "decryptedlen", len(bufOut))

	return bufOut, nil
}

package main

import (
	"fmt"

	"github.com/sem-hub/snake-rc/internal/rc"
)

func pbuf(label string, p []byte) {
	fmt.Printf("%s", label)
	for _, b := range p {
		fmt.Printf("%02X", b)
	}
	fmt.Println()
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func printVector5(w, r, b int) {
	key := seq(b)
	fmt.Printf("RC5-%d/%d/%d\n", w, r, b)
	pbuf("Key:          ", key)
	c, err := rc.NewRC5(w, r, key)
	if err != nil {
		fmt.Printf("Unsupported w/r/b: %d/%d/%d\n", w, r, b)
		return
	}
	buf := seq(c.BlockSize())
	pbuf("Block input:  ", buf)
	c.Encrypt(buf, buf)
	pbuf("Block output: ", buf)
	c.Decrypt(buf, buf)
	pbuf("Block input:  ", buf)
}

func printVector6(w, r, b int) {
	key := seq(b)
	fmt.Printf("RC6-%d/%d/%d\n", w, r, b)
	pbuf("Key:          ", key)
	c, err := rc.NewRC6(w, r, key)
	if err != nil {
		fmt.Printf("Unsupported w/r/b: %d/%d/%d\n", w, r, b)
		return
	}
	buf := seq(c.BlockSize())
	pbuf("Block input:  ", buf)
	c.Encrypt(buf, buf)
	pbuf("Block output: ", buf)
	c.Decrypt(buf, buf)
	pbuf("Block input:  ", buf)
}

// printVectors prints the classic vector sets for one word width.
func printVectors(w int) {
	printVector5(w, 16, 16)
	printVector6(w, 20, 16)
	printVector5(w, 252, 255)
	printVector6(w, 252, 255)
}

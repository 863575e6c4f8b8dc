package rc_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/sem-hub/snake-rc/internal/rc"
)

// Pinned ciphertexts for every word size. Key is bytes 0..b-1 and the
// plaintext block is bytes 0..blockBytes-1, the same patterns the classic
// vector driver prints.
var rc5Vectors = []struct {
	w, r, b int
	out     string
}{
	{8, 16, 16, "c72f"},
	{8, 0, 16, "77fb"},
	{8, 8, 0, "e7d1"},
	{8, 252, 255, "e867"},
	{8, 12, 16, "806f"},
	{16, 16, 16, "5b44d83f"},
	{16, 0, 16, "a85327f4"},
	{16, 8, 0, "47052a83"},
	{16, 252, 255, "e1393400"},
	{16, 12, 16, "d8238da5"},
	{32, 16, 16, "3e2e95357027d896"},
	{32, 0, 16, "6345116dd3d99ef1"},
	{32, 8, 0, "4fd08b09b84e81bc"},
	{32, 252, 255, "21a40252c39ae8ce"},
	{32, 12, 16, "c8d3b3c486700cfa"},
	{64, 16, 16, "34b0bcae559dd60566b6ba2b74ad0695"},
	{64, 0, 16, "c86a03126e8d80fc934a1b7dbf27e0b9"},
	{64, 8, 0, "c7551c684fdd508e82b48dbf67703ebf"},
	{64, 252, 255, "7043b47b974babf3fdfde2eeb4ced13d"},
	{64, 12, 16, "75da0d750094184e218622c0bfc16df0"},
	{128, 16, 16, "7d406c7992f1e869e7323cba0930d08f8675d05d238d00f08b850bc30e2191e2"},
	{128, 0, 16, "beae322304f6c280c499c55e55acd7f281f6c58d3bfb11af90ba336c3f8c34e3"},
	{128, 8, 0, "53b9e57f5bc6479e09246c62302d2e21a93aceda1edf4e5a89c95aa10343fd6f"},
	{128, 252, 255, "2faf3e3c96c51e95ea36b2b18cc64a3981a73cbbe21e7ca0ae8ed78d7c137f10"},
	{128, 12, 16, "c980d45c0be7f8a6f48b0c12de86a2edc7c4d5be727e1f64eb5f06094f1fa3a4"},
}

var rc6Vectors = []struct {
	w, r, b int
	out     string
}{
	{8, 20, 16, "9e8f08f2"},
	{8, 0, 16, "e2a8bc84"},
	{8, 8, 0, "0a6fee99"},
	{8, 252, 255, "9675fd03"},
	{8, 24, 24, "0ec81b7f"},
	{16, 20, 16, "ce91dd3e85fe9188"},
	{16, 0, 16, "6f57e980881643d8"},
	{16, 8, 0, "f89d7c506e3af8d0"},
	{16, 252, 255, "ec0971bb4bd8fe23"},
	{16, 24, 24, "58053fd25139850d"},
	{32, 20, 16, "3a96f9c7f6755cfe46f00e3dcd5d2a3c"},
	{32, 0, 16, "21e49b0932ffac2118cc90fd40b07e9c"},
	{32, 8, 0, "4947011cea2868a3a10c614f980e1d96"},
	{32, 252, 255, "029d4c6ad872fd70d9425a8b787f3b99"},
	{32, 24, 24, "2af94a3622db3cdea7d061eb6ac35675"},
	{64, 20, 16, "87c25ed9791abec229c221d924664eec2a1baa9ce6d6126fa58d882e0914d7cb"},
	{64, 0, 16, "9e5941dd5bf18225b90bda22b15360eccac71234b34fecfbf15ef7cdf8b4feb9"},
	{64, 8, 0, "70b38900f894a2ef009961f139d703e9a8c35e0237d55754ff2a53ca270fd63b"},
	{64, 252, 255, "f6619c6c9ac0350f120a89567201f9d1b4c176d041d94d98de0b55d64908c920"},
	{64, 24, 24, "c002de050bd55e5d36864ab9853338e6dc4a1326c6bdaaeb1bc9e4fd67886617"},
	{128, 20, 16, "63def57fcd9edbe62ddab877ce2959cf481e52a775ba7e4bf58f6a4f207a55c67bca3d99c76156e3c553c875966af9a688849168fd8042777351b3a5ed606a77"},
	{128, 0, 16, "f42e44ee81f5027c5d75b941790cf38db797e4dbc5428231b47af8136daae0e83e6718370cb5e40fb7c9c298029bf326ec9599513469e2e1d8d91c22a5566610"},
	{128, 8, 0, "96277d5fa7051fc25e90bee543779c29fff622669051e3051932b0a0c0819c68d68b3635685dd0a71e5e6dc9a3740847713de7fa089986765c14f0bb4ed805a2"},
	{128, 252, 255, "3374f5cc07cae5a10308d5b342428d331cc7312c263e388c89a4bf0621a3d92faa895e93f8c37d7f9413a9c8f6534e075b0c57a7e1573b07f8cd264c3568049d"},
	{128, 24, 24, "3924b5bcad82dc2e52f668ca1f1fe8eed78e69a4b7fb92d6e5221b278188bbb5e555006e22bd721fc5566d47347775efe2d383fb21434a62a4476bb99be4eec5"},
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestRC5Vectors(t *testing.T) {
	for _, v := range rc5Vectors {
		c, err := rc.NewRC5(v.w, v.r, seq(v.b))
		if err != nil {
			t.Fatalf("rc5-%d/%d/%d: setup failed: %v", v.w, v.r, v.b, err)
		}
		pt := seq(c.BlockSize())
		ct := make([]byte, c.BlockSize())
		c.Encrypt(ct, pt)
		if got := hex.EncodeToString(ct); got != v.out {
			t.Errorf("rc5-%d/%d/%d: got %s want %s", v.w, v.r, v.b, got, v.out)
		}
		back := make([]byte, c.BlockSize())
		c.Decrypt(back, ct)
		if !bytes.Equal(back, pt) {
			t.Errorf("rc5-%d/%d/%d: decrypt did not restore plaintext", v.w, v.r, v.b)
		}
	}
}

func TestRC6Vectors(t *testing.T) {
	for _, v := range rc6Vectors {
		c, err := rc.NewRC6(v.w, v.r, seq(v.b))
		if err != nil {
			t.Fatalf("rc6-%d/%d/%d: setup failed: %v", v.w, v.r, v.b, err)
		}
		pt := seq(c.BlockSize())
		ct := make([]byte, c.BlockSize())
		c.Encrypt(ct, pt)
		if got := hex.EncodeToString(ct); got != v.out {
			t.Errorf("rc6-%d/%d/%d: got %s want %s", v.w, v.r, v.b, got, v.out)
		}
		back := make([]byte, c.BlockSize())
		c.Decrypt(back, ct)
		if !bytes.Equal(back, pt) {
			t.Errorf("rc6-%d/%d/%d: decrypt did not restore plaintext", v.w, v.r, v.b)
		}
	}
}

// Published vectors: RC5-32/12/16 from Rivest's RC5 paper and RC6-32/20/16
// from the AES submission.
func TestPublishedVectors(t *testing.T) {
	c5, err := rc.NewRC5(32, 12, make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, 8)
	c5.Encrypt(ct, make([]byte, 8))
	if got := hex.EncodeToString(ct); got != "21a5dbee154b8f6d" {
		t.Errorf("rc5-32/12/16 zero vector: got %s", got)
	}

	key, _ := hex.DecodeString("0123456789abcdef0112233445566778")
	pt, _ := hex.DecodeString("02132435465768798a9bacbdcedfe0f1")
	c6, err := rc.NewRC6(32, 20, key)
	if err != nil {
		t.Fatal(err)
	}
	ct = make([]byte, 16)
	c6.Encrypt(ct, pt)
	if got := hex.EncodeToString(ct); got != "524e192f4715c6231f51f6367ea43f18" {
		t.Errorf("rc6-32/20/16 published vector: got %s", got)
	}
}

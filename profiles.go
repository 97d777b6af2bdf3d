package mlkem

import "io"

// GenerateKey512 generates an ML-KEM-512 key pair, reading randomness
// from rand. Grounded on KarpelesLab-mldsa's GenerateKey44/65/87 trio of
// thin per-parameter-set wrappers over a shared core.
func GenerateKey512(rand io.Reader) (*EncapsKey, *DecapsKey, error) {
	return KeyGen(rand, ML_KEM_512)
}

// GenerateKey768 generates an ML-KEM-768 key pair, reading randomness
// from rand.
func GenerateKey768(rand io.Reader) (*EncapsKey, *DecapsKey, error) {
	return KeyGen(rand, ML_KEM_768)
}

// GenerateKey1024 generates an ML-KEM-1024 key pair, reading randomness
// from rand.
func GenerateKey1024(rand io.Reader) (*EncapsKey, *DecapsKey, error) {
	return KeyGen(rand, ML_KEM_1024)
}

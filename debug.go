package mlkem

import "github.com/fxamacker/cbor/v2"

// KeySnapshot is a non-wire-format debug view of an encapsulation key:
// metadata useful for logging and inspection, never for reconstructing
// the key. Per SPEC_FULL.md §4.14.
type KeySnapshot struct {
	Profile string `cbor:"profile"`
	Rho     []byte `cbor:"rho"`
	HashEK  []byte `cbor:"h_ek"`
	EkSize  int    `cbor:"ek_size"`
}

// DebugDescribe returns a CBOR-encoded snapshot of ek's metadata,
// suitable for structured logging or a --describe CLI flag. It is not a
// serialization format ek can be reconstructed from.
func (ek *EncapsKey) DebugDescribe() ([]byte, error) {
	hEK := H(ek.Bytes())
	snap := KeySnapshot{
		Profile: ek.Profile.Name,
		Rho:     append([]byte(nil), ek.pk.Rho[:]...),
		HashEK:  hEK[:],
		EkSize:  ek.Profile.EncapsKeySize(),
	}
	return cbor.Marshal(snap)
}

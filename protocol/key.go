package protocol

// EncodeKey packs a 4-character SMC key into its 32-bit wire form,
// first character in the most significant byte.
//
// Returns 0 when the key is not exactly KeySize characters. Zero can never be
// produced by a printable 4-character key (that would require a leading NUL),
// so callers may treat a zero return as "invalid key".
func EncodeKey(key string) uint32 {
	if len(key) != KeySize {
		return 0
	}

	var packed uint32
	for i := 0; i < KeySize; i++ {
		packed |= uint32(key[i]) << (24 - 8*i)
	}

	return packed
}

// DecodeTag unpacks a 32-bit value into its 4-character constant form,
// most significant byte first. Total over all inputs; used for the data type
// tags the SMC reports in key metadata.
func DecodeTag(packed uint32) string {
	tag := make([]byte, TagSize)
	for i := 0; i < TagSize; i++ {
		tag[i] = byte(packed >> (24 - 8*i))
	}

	return string(tag)
}

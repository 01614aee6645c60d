package valuation

// HashSeed computes the legacy 32-bit string hash used to derive per-stock
// oscillation phases: h = 31*h + codepoint for each character, wrapping in
// signed 32-bit arithmetic. Price history produced before the migration was
// seeded with this exact hash, so it must not be replaced with another one.
func HashSeed(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return h
}

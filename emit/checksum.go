package emit

import (
	"encoding/hex"

	"lukechampine.com/blake3"

	"github.com/OOAAHH/RNAView/pairing"
)

// ChecksumHex returns the hex-encoded BLAKE3 digest of the canonical
// text record, exercising testable property 1 (§8): identical input
// yields a byte-identical record set, and therefore an identical
// checksum, regardless of upstream iteration order.
func ChecksumHex(r pairing.Result) string {
	sum := blake3.Sum256([]byte(WriteText(r)))
	return hex.EncodeToString(sum[:])
}

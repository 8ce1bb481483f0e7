package ledger

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codePrefixes = map[Type]string{
	TypeIn:   "IN",
	TypeOut:  "OUT",
	TypeBuy:  "BUY",
	TypeSell: "INV",
}

// GenerateCode produces a human-readable transaction code of the form
// {PREFIX}-{YYYYMMDD}-{RAND4}. The prefix mapping is deterministic per
// type; the 4-character suffix is random. Codes are advisory
// identifiers, not keys: callers must tolerate the theoretical
// collision (~1 in 1.6M per day per prefix).
func GenerateCode(t Type, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", codePrefixes[t], now.Format("20060102"), randomToken(4))
}

// GenerateDeliveryCode produces the secondary SJ-{YYYYMMDD}-{RAND4}
// code stamped on sell transactions, with a token independent of the
// transaction code.
func GenerateDeliveryCode(now time.Time) string {
	return fmt.Sprintf("SJ-%s-%s", now.Format("20060102"), randomToken(4))
}

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}

	return string(b)
}

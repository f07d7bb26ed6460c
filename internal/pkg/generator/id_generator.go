package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

type IDGenerator struct{}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) SessionID() string {
	return uuid.NewString()
}

func (g *IDGenerator) ItemID() string {
	return g.prefixed("ITM")
}

func (g *IDGenerator) PurchaseID() string {
	return g.prefixed("PUR")
}

func (g *IDGenerator) prefixed(prefix string) string {
	randomBytes := make([]byte, 5) // 5 bytes will give us 10 hex chars
	if _, err := rand.Read(randomBytes); err != nil {
		return prefix + "-" + uuid.NewString()
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(randomBytes))
}

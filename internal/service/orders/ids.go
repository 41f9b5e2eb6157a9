package orders

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

type randomIDs struct{}

// NewIDGenerator returns the default generator: uuid ids, AB-123 style
// codes and 12-digit numeric barcodes.
func NewIDGenerator() IDGenerator { return randomIDs{} }

func (randomIDs) NewID() string { return uuid.NewString() }

func (randomIDs) NewCode() string {
	return fmt.Sprintf("%c%c-%03d", 'A'+rand.Intn(26), 'A'+rand.Intn(26), rand.Intn(1000))
}

func (randomIDs) NewBarcode() string {
	return fmt.Sprintf("%d%011d", 1+rand.Intn(9), rand.Int63n(100_000_000_000))
}

package entity

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Pair is a currency pair in the base/quote form the v20 API uses for
// instrument names, e.g. EUR_USD.
type Pair struct {
	Base  string
	Quote string
}

// ParsePair splits an instrument name like "EUR_USD".
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, errors.Errorf("invalid instrument name %q, want BASE_QUOTE", s)
	}
	return Pair{Base: parts[0], Quote: parts[1]}, nil
}

func (p Pair) String() string {
	return fmt.Sprintf("%s_%s", p.Base, p.Quote)
}

package repository

import (
	"os"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Money is stored as a decimal string so DynamoDB never rounds it.
func decimalToString(d decimal.Decimal) string {
	return d.String()
}

func decimalFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

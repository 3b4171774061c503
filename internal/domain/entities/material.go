package entities

import "time"

// Display units used by the calculators and the resolver.
const (
	UnitPiece      = "عدد"
	UnitBranch     = "شاخه"
	UnitSheet      = "برگ"
	UnitPack       = "بسته"
	UnitInsulation = "ورق"
)

// MaterialResult is one (material, quantity, unit) line produced by a calculator.
//
// Quantities are non-negative and may be fractional before rounding.
type MaterialResult struct {
	Material string  `json:"material" dynamodbav:"material"`
	Quantity float64 `json:"quantity" dynamodbav:"quantity"`
	Unit     string  `json:"unit" dynamodbav:"unit"`
}

// Key identifies a material line for aggregation purposes.
func (r MaterialResult) Key() string {
	return r.Material + "|" + r.Unit
}

// AggregatedResult has the shape of MaterialResult but is unique per
// (material, unit) across a whole estimating session.
type AggregatedResult = MaterialResult

// Estimation is one user-confirmed calculator run kept in a session.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// Estimations are never updated after creation, only removed.
type Estimation struct {
	ID          string           `json:"id"`
	SessionID   string           `json:"session_id"`
	Description string           `json:"description"`
	Results     []MaterialResult `json:"results"`
	CreatedAt   time.Time        `json:"created_at"`
}

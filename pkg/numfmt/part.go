package numfmt

import "strings"

// PartKind tags the semantic role of a formatted fragment.
type PartKind string

const (
	PartInteger   PartKind = "integer"
	PartGroup     PartKind = "group"
	PartDecimal   PartKind = "decimal"
	PartFraction  PartKind = "fraction"
	PartMinusSign PartKind = "minusSign"
	PartInfinity  PartKind = "infinity"
	PartNaN       PartKind = "nan"
	PartLiteral   PartKind = "literal"
)

// Part is one tagged fragment of a formatted number.
type Part struct {
	Kind  PartKind `json:"type"`
	Value string   `json:"value"`
}

// JoinParts concatenates part values in order.
func JoinParts(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Value)
	}
	return b.String()
}

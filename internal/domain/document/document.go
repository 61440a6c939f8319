package document

import "strings"

// Disclaimer is attached verbatim to every generated quote and invoice.
const Disclaimer = "This work was performed by a 4th-year plumbing apprentice, not a licensed plumber. The client was made aware of this prior to the commencement of work and agreed to proceed. Pricing reflects apprentice-level rates."

// Material is one priced row entered on the quote form.
type Material struct {
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (m Material) LineTotal() float64 {
	return float64(m.Quantity) * m.UnitPrice
}

// Normalize drops rows with an empty item name and clamps the remaining
// rows to quantity >= 1 and unit price >= 0.
func Normalize(materials []Material) []Material {
	out := make([]Material, 0, len(materials))
	for _, m := range materials {
		m.ItemName = strings.TrimSpace(m.ItemName)
		if m.ItemName == "" {
			continue
		}
		if m.Quantity < 1 {
			m.Quantity = 1
		}
		if m.UnitPrice < 0 {
			m.UnitPrice = 0
		}
		out = append(out, m)
	}
	return out
}

// Total computes the document total: sum of line totals plus the labour
// or flat-rate charge. Fixed at creation time, never recomputed.
func Total(materials []Material, labourCharge float64) float64 {
	sum := labourCharge
	for _, m := range materials {
		sum += m.LineTotal()
	}
	return sum
}

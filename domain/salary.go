package domain

// SalaryConversion bundles a gross annual salary with its deductions.
// Saturated is set when a net→gross search clamped at its upper bound,
// meaning the returned gross is a boundary approximation, not exact.
type SalaryConversion struct {
	Gross     float64 `json:"gross"`
	Net       float64 `json:"net"`
	IncomeTax float64 `json:"income_tax"`
	NIC       float64 `json:"nic"`
	Saturated bool    `json:"saturated,omitempty"`
}

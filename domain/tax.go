package domain

// Band is one slab of a progressive tax schedule. Rate applies only to the
// portion of an amount falling within [Lower, Upper).
type Band struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
	Rate  float64 `json:"rate" yaml:"rate"`
}

// TaxSchedule is an ordered, contiguous sequence of bands covering [0, +Inf).
// Built once at startup from configuration, never mutated.
type TaxSchedule []Band

package entity

// PromoRow is one row of the promo usage report. The report's columns vary
// with portal configuration, so rows stay header-keyed rather than typed;
// normalization only performs the empty check.
type PromoRow struct {
	Fields map[string]string
}

// Field returns the named column value, or an empty string when absent.
func (r PromoRow) Field(name string) string {
	return r.Fields[name]
}

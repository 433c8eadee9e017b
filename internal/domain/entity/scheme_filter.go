package entity

// SchemeFilter is a domain-level filter for searching schemes, keyed by query
// parameter name. Parameters the caller did not send (or sent empty) are absent.
// Used by the query builder to avoid coupling with delivery DTOs.
type SchemeFilter map[string]string

// Lookup returns the raw value for name and whether the caller supplied it.
func (f SchemeFilter) Lookup(name string) (string, bool) {
	v, ok := f[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Package roles holds the unified role-group table consulted by every
// classifier and by the dashboard's deduplication step. Exemption and
// pooling rules live here as configuration, not as lists scattered
// through the services.
package roles

import "strings"

// Group describes how a role group participates in attendance rules.
type Group struct {
	// Exempt roles never receive a time-based status; classification
	// always yields N/A for them.
	Exempt bool
	// Pooled roles are tracked by their own presence pool and excluded
	// from the regular absent calculation to avoid double counting.
	Pooled bool
}

// Table is the resolved role configuration for one deployment.
type Table struct {
	groups      map[string]Group
	exemptIDs   map[string]struct{}
	maskedIDs   map[string]struct{}
	maskDisplay string
}

// Config carries the raw lists from the environment.
type Config struct {
	ExemptRoles []string
	PooledRoles []string
	ExemptIDs   []string
	// MaskedIDs are employees whose real role must not appear in
	// responses; MaskDisplay replaces it.
	MaskedIDs   []string
	MaskDisplay string
}

// Normalize canonicalizes a role name for lookups.
func Normalize(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

// NewTable builds a role table from configuration.
func NewTable(cfg Config) *Table {
	t := &Table{
		groups:      make(map[string]Group),
		exemptIDs:   make(map[string]struct{}),
		maskedIDs:   make(map[string]struct{}),
		maskDisplay: cfg.MaskDisplay,
	}

	for _, r := range cfg.ExemptRoles {
		name := Normalize(r)
		g := t.groups[name]
		g.Exempt = true
		t.groups[name] = g
	}
	for _, r := range cfg.PooledRoles {
		name := Normalize(r)
		g := t.groups[name]
		g.Pooled = true
		t.groups[name] = g
	}
	for _, id := range cfg.ExemptIDs {
		t.exemptIDs[strings.TrimSpace(id)] = struct{}{}
	}
	for _, id := range cfg.MaskedIDs {
		t.maskedIDs[strings.TrimSpace(id)] = struct{}{}
	}
	return t
}

// IsExempt reports whether the role or the specific employee is exempt
// from scheduling penalties.
func (t *Table) IsExempt(role, employeeID string) bool {
	if _, ok := t.exemptIDs[employeeID]; ok {
		return true
	}
	return t.groups[Normalize(role)].Exempt
}

// IsPooled reports whether the role is tracked by a separate presence
// pool.
func (t *Table) IsPooled(role string) bool {
	return t.groups[Normalize(role)].Pooled
}

// DisplayRole returns the role name safe for presentation, applying the
// configured mask for hidden employees.
func (t *Table) DisplayRole(employeeID, role string) string {
	if _, ok := t.maskedIDs[employeeID]; ok && t.maskDisplay != "" {
		return t.maskDisplay
	}
	return Normalize(role)
}

// ExemptIDs returns the configured per-employee exemptions.
func (t *Table) ExemptIDs() []string {
	ids := make([]string, 0, len(t.exemptIDs))
	for id := range t.exemptIDs {
		ids = append(ids, id)
	}
	return ids
}

package verve

import (
	"testing"
)

// TestDefaultProfilesComplete verifies the built-in profile set covers
// the default section and only names known systems.
func TestDefaultProfilesComplete(t *testing.T) {
	profiles := DefaultProfiles()

	if _, ok := profiles[DefaultSection]; !ok {
		t.Fatalf("default section %q missing from DefaultProfiles", DefaultSection)
	}

	valid := map[string]bool{
		SystemQuantum:     true,
		SystemHolographic: true,
		SystemFaceted:     true,
	}
	for id, p := range profiles {
		if !valid[p.System] {
			t.Errorf("profile %q names unknown system %q", id, p.System)
		}
	}
}

// TestDefaultProfilesWithinBounds verifies every authored base vector
// already sits inside the documented channel ranges, so a transition
// never starts from an out-of-range target.
func TestDefaultProfilesWithinBounds(t *testing.T) {
	for id, p := range DefaultProfiles() {
		if !p.Base.Approx(p.Base.Clamped(), 1e-9) {
			t.Errorf("profile %q base escapes channel ranges: %+v", id, p.Base)
		}
	}
}

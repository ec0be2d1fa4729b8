package directory

import "testing"

func TestOfficeFor(t *testing.T) {
	if got := OfficeFor("Tokyo"); got.Country != "Japan" || got.X != 85 || got.Y != 40 {
		t.Fatalf("unexpected Tokyo office: %+v", got)
	}
	if got := OfficeFor("tokyo"); got != unknownOffice {
		t.Fatalf("expected exact-match lookup, got %+v", got)
	}
	if got := OfficeFor("Atlantis"); got.X != 50 || got.Y != 50 || got.Country != "Unknown" {
		t.Fatalf("unexpected fallback: %+v", got)
	}
}

package normalization

import "testing"

type color string

func TestNormalizeFallsBackToDefault(t *testing.T) {
	n := NewNormalizer(map[string]color{"Red": "red", "blue": "blue"}, "red")
	if got := n.Normalize("  RED "); got != "red" {
		t.Fatalf("Normalize(RED) = %q, want red", got)
	}
	if got := n.Normalize("green"); got != "red" {
		t.Fatalf("Normalize(green) = %q, want default red", got)
	}
}

func TestNormalizeWithErrorReportsValidKeys(t *testing.T) {
	n := NewNormalizer(map[string]color{"red": "red", "blue": "blue"}, "red")
	if _, err := n.NormalizeWithError("green"); err == nil {
		t.Fatal("expected error for unrecognized value")
	}
	if got := n.ValidKeys(); len(got) != 2 || got[0] != "blue" || got[1] != "red" {
		t.Fatalf("ValidKeys() = %v, want sorted [blue red]", got)
	}
}

package phone

import "testing"

func TestE164(t *testing.T) {
	n := NewNormalizer("nl")

	cases := map[string]string{
		"06 12345678":      "+31612345678",
		"+1 650-253-0000":  "+16502530000",
		"  ":               "",
		"not a number":     "not a number",
		"+31 6 1234 5678 ": "+31612345678",
	}
	for in, want := range cases {
		if got := n.E164(in); got != want {
			t.Fatalf("E164(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestE164PtrNil(t *testing.T) {
	if NewNormalizer("").E164Ptr(nil) != nil {
		t.Fatal("expected nil for nil input")
	}
}

package sanitize

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	cases := map[string]string{
		"<b>Sunny</b>   beaches":                 "Sunny beaches",
		"&lt;script&gt;alert(1)&lt;/script&gt;ok": "alert(1)ok",
		"  plain  ":                              "plain",
	}
	for in, want := range cases {
		if got := Text(in); got != want {
			t.Fatalf("Text(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStringsDropsEmpty(t *testing.T) {
	got := Strings([]string{" Breakfast ", "<i></i>", "Guide"})
	want := []string{"Breakfast", "Guide"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

package service

import (
	"reflect"
	"testing"
)

func TestParseIncluded(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{`["Hotel", "Breakfast"]`, []string{"Hotel", "Breakfast"}},
		{"Hotel, Breakfast ,,Guide", []string{"Hotel", "Breakfast", "Guide"}},
		{`[not json`, []string{"[not json"}},
		{`["<b>Spa</b>"]`, []string{"Spa"}},
	}
	for _, tc := range cases {
		got := ParseIncluded(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseIncluded(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

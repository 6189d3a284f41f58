package auth

import "testing"

func TestExpectedPassword(t *testing.T) {
	cases := []struct {
		phone string
		want  string
	}{
		{"010-1234-5678", "5678"},
		{"01012345678", "5678"},
		{"+82 10 1234 5678", "5678"},
		{"010.9876.5432", "5432"},
		{"12", "12"},
		{"abcd", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExpectedPassword(tc.phone); got != tc.want {
			t.Fatalf("ExpectedPassword(%q) = %q, want %q", tc.phone, got, tc.want)
		}
	}
}

func TestExpectedPasswordEmptyNeverMatches(t *testing.T) {
	if ExpectedPassword("") == "0000" {
		t.Fatalf("empty phone must not match a submitted password")
	}
	if ExpectedPassword("no digits here") != "" {
		t.Fatalf("phone without digits must derive empty password")
	}
}

package common

import "testing"

func TestBeaut(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"ab", 4, " ab "},
		{"ab", 5, " ab  "},
		{"abc", 3, "abc"},
		{"", 2, "  "},
	}
	for _, tc := range tests {
		if got := Beaut(tc.in, tc.n); got != tc.want {
			t.Errorf("Beaut(%q, %d) = %q; want %q", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestPrintErrWithCallbackNil(t *testing.T) {
	if err := PrintErrWithCmdHelp(nil, nil); err != nil {
		t.Errorf("nil error should pass through, got %v", err)
	}
}

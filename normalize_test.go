package attrs

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"fooBar", "foo_bar"},
		{"FooBar", "foo_bar"},
		{"foo_bar", "foo_bar"},
		{"someMixedCASEKey", "some_mixed_casekey"},
		{"plain", "plain"},
		{"UPPER", "upper"},
		{"a1B", "a1_b"},
		{"", ""},
	}

	for i, tc := range cases {
		if got := Normalize(tc.in); got != tc.out {
			t.Fatalf("case %d: Normalize(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"fooBar", "someMixedCASEKey", "already_normal", "X", ""} {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", raw, twice, once)
		}
	}
}

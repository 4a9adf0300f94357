package models

import "testing"

func TestParseTagExpression(t *testing.T) {
	cases := []struct {
		query string
		tags  []string
		want  bool
	}{
		{"go", []string{"go"}, true},
		{"go", []string{"rust"}, false},
		{"GO", []string{"go"}, true}, // expression matching is case-insensitive
		{"go AND testing", []string{"go", "testing"}, true},
		{"go AND testing", []string{"go"}, false},
		{"go OR rust", []string{"rust"}, true},
		{"NOT legacy", []string{"go"}, true},
		{"NOT legacy", []string{"legacy"}, false},
		{"go AND (testing OR style)", []string{"go", "style"}, true},
		{"go AND (testing OR style)", []string{"go"}, false},
		{"go XOR rust", []string{"go"}, true},
		{"go XOR rust", []string{"go", "rust"}, false},
		{"NOT (a OR b)", []string{"c"}, true},
	}

	for _, tc := range cases {
		expr, err := ParseTagExpression(tc.query)
		if err != nil {
			t.Fatalf("ParseTagExpression(%q): %v", tc.query, err)
		}
		if got := expr.Matches(tc.tags); got != tc.want {
			t.Errorf("%q on %v = %v, want %v", tc.query, tc.tags, got, tc.want)
		}
	}
}

func TestParseTagExpressionErrors(t *testing.T) {
	for _, query := range []string{"", "go AND", "(go", "go)", "AND go", "NOT"} {
		if _, err := ParseTagExpression(query); err == nil {
			t.Errorf("expected error for %q", query)
		}
	}
}

func TestNilExpressionMatchesEverything(t *testing.T) {
	var expr *TagExpression
	if !expr.Matches([]string{"anything"}) {
		t.Fatal("nil expression should match")
	}
	if !expr.Matches(nil) {
		t.Fatal("nil expression should match empty tags")
	}
}

func TestExpressionString(t *testing.T) {
	expr, err := ParseTagExpression("go AND (testing OR style)")
	if err != nil {
		t.Fatal(err)
	}
	want := "(go AND (testing OR style))"
	if got := expr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

package issue

import "testing"

func TestParseMessage(t *testing.T) {
	cases := []struct {
		in   string
		want []Segment
	}{
		{"plain", []Segment{{Text: "plain"}}},
		{"", []Segment{{Text: ""}}},
		{"Did you mean `the`?", []Segment{{Text: "Did you mean "}, {Text: "the", Code: true}, {Text: "?"}}},
		{"`a` or `b`", []Segment{{Text: "a", Code: true}, {Text: " or "}, {Text: "b", Code: true}}},
		{"open `tick", []Segment{{Text: "open `tick"}}},
		{"x `` y", []Segment{{Text: "x `` y"}}},
	}
	for _, tc := range cases {
		got := ParseMessage(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("ParseMessage(%q)=%v, want %v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("ParseMessage(%q)[%d]=%v, want %v", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestRuleTitle(t *testing.T) {
	cases := map[string]string{
		"AvoidCurses":   "Avoid Curses",
		"LongSentences": "Long Sentences",
		"URLChecker":    "URL Checker",
		"AnA":           "An A",
		"Spaces":        "Spaces",
	}
	for in, want := range cases {
		if got := RuleTitle(in); got != want {
			t.Fatalf("RuleTitle(%q)=%q, want %q", in, got, want)
		}
	}
}

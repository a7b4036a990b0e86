package span

import "testing"

func TestDiff(t *testing.T) {
	cases := []struct {
		name     string
		before   string
		after    string
		want     Delta
		inserted string
	}{
		{"append", "a", "ab", Delta{From: 1, To: 1, Inserted: 1}, "b"},
		{"prepend", "cat", "a cat", Delta{From: 0, To: 0, Inserted: 2}, "a "},
		{"replace middle", "Teh cat", "The cat", Delta{From: 1, To: 3, Inserted: 2}, "he"},
		{"delete", "hello world", "hello", Delta{From: 5, To: 11}, ""},
		{"repeated runes", "aaa", "aaaa", Delta{From: 3, To: 3, Inserted: 1}, "a"},
		{"unicode", "héllo", "hállo", Delta{From: 1, To: 2, Inserted: 1}, "á"},
		{"clear", "abc", "", Delta{From: 0, To: 3}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ins, ok := Diff(tc.before, tc.after)
			if !ok {
				t.Fatalf("expected change")
			}
			if d != tc.want {
				t.Fatalf("delta=%v, want %v", d, tc.want)
			}
			if ins != tc.inserted {
				t.Fatalf("inserted=%q, want %q", ins, tc.inserted)
			}
			if got := Apply(tc.before, d, ins); got != tc.after {
				t.Fatalf("Apply=%q, want %q", got, tc.after)
			}
		})
	}
}

func TestDiff_Equal(t *testing.T) {
	if _, _, ok := Diff("same", "same"); ok {
		t.Fatalf("expected no change")
	}
}

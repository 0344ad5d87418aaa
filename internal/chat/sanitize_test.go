package chat

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"control tokens", "hi[control_42] there", "hi there"},
		{"unk marker", "a<unk>b", "ab"},
		{"tool markers", "[TOOL_CALLS]x[TOOL_RESULTS]y", "xy"},
		{"whitespace collapse", "a \t\n  b", "a b"},
		{"everything", "[control_1] foo<unk>  [TOOL_CALLS]bar", " foo bar"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Clean(tc.in)
			if got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanForRelay(t *testing.T) {
	got, keep := CleanForRelay("hello")
	if !keep || got != "hello " {
		t.Fatalf("expected %q keep=true, got %q keep=%v", "hello ", got, keep)
	}

	// chunks that are only artifacts must be dropped
	for _, in := range []string{"", "  ", "[control_7]", "<unk>", " \n\t"} {
		if _, keep := CleanForRelay(in); keep {
			t.Fatalf("expected %q to be dropped", in)
		}
	}
}

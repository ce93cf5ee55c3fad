package textfit

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateUnchangedWithinBudget(t *testing.T) {
	tests := []string{"", "short", "exactly ten."}
	for _, text := range tests {
		if got := Truncate(text, utf8.RuneCountInString(text), true); got != text {
			t.Errorf("Truncate(%q) = %q, want unchanged", text, got)
		}
	}
}

func TestTruncateLengthGuarantee(t *testing.T) {
	texts := []string{
		strings.Repeat("word ", 40),
		"A full sentence here. And another one follows it immediately after.",
		strings.Repeat("가나다라 ", 20),
		strings.Repeat("x", 100),
	}
	budgets := []int{5, 10, 23, 50, 64}

	for _, text := range texts {
		for _, n := range budgets {
			got := Truncate(text, n, true)
			if utf8.RuneCountInString(got) > n+EllipsisLen {
				t.Errorf("Truncate(%d) = %q: %d runes, want <= %d",
					n, got, utf8.RuneCountInString(got), n+EllipsisLen)
			}
			if got == "" {
				t.Errorf("Truncate(%d) returned empty for non-empty input", n)
			}
		}
	}
}

func TestTruncatePrefersSentenceBoundary(t *testing.T) {
	text := "First sentence ends here. Second sentence is much longer and keeps going."
	got := Truncate(text, 30, true)
	if got != "First sentence ends here."+Ellipsis {
		t.Errorf("Truncate() = %q, want sentence-boundary cut", got)
	}
}

func TestTruncateKoreanSentenceBoundary(t *testing.T) {
	text := "성장 전략을 수립한다。 이후 실행 계획이 따른다"
	got := Truncate(text, 14, true)
	if !strings.HasSuffix(got, "。"+Ellipsis) {
		t.Errorf("Truncate() = %q, want cut after CJK sentence end", got)
	}
}

func TestTruncateWordBoundaryFallback(t *testing.T) {
	text := "weekly revenue impact analysis session"
	got := Truncate(text, 20, true)
	// No sentence end in the prefix; the last space inside the first
	// 20 runes sits at rune 14, which meets the 70% floor.
	if got != "weekly revenue"+Ellipsis {
		t.Errorf("Truncate() = %q, want word-boundary cut", got)
	}

	// A boundary below the floor falls through to a hard cut.
	got = Truncate("alphabet soup kitchen management", 20, true)
	if got != "alphabet soup kitche"+Ellipsis {
		t.Errorf("Truncate() = %q, want hard cut", got)
	}
}

func TestTruncateHardCut(t *testing.T) {
	text := strings.Repeat("a", 50)
	got := Truncate(text, 10, true)
	if got != strings.Repeat("a", 10)+Ellipsis {
		t.Errorf("Truncate() = %q, want hard cut + ellipsis", got)
	}

	// Non-smart mode always hard-cuts.
	got = Truncate("one two three", 6, false)
	if got != "one tw"+Ellipsis {
		t.Errorf("Truncate(smart=false) = %q", got)
	}
}

func TestTruncateLines(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}

	kept := TruncateLines(lines, 2)
	if len(kept) != 2 || kept[1] != "b"+Ellipsis {
		t.Errorf("TruncateLines() = %v", kept)
	}

	same := TruncateLines(lines, 10)
	if len(same) != 4 {
		t.Errorf("TruncateLines() dropped lines within budget: %v", same)
	}
}

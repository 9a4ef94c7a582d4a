package catechism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louiepolk/go-discord-catechism/internal/catechism"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "CollapsesWhitespace",
			in:   "God  draws\n\n close   to man.",
			want: "God draws close to man.",
		},
		{
			name: "StripsStandaloneFootnoteNumbers",
			in:   "the apostles went out and preached everywhere. 2 3",
			want: "the apostles went out and preached everywhere.",
		},
		{
			name: "PreservesBibleReference",
			in:   "God draws close to man. 12 (cf. Rom 5:29)",
			want: "God draws close to man. (cf. Rom 5:29)",
		},
		{
			name: "PreservesNumberedBookReference",
			in:   "man is created by God (1 Cor 3:16); 4",
			want: "man is created by God (1 Cor 3:16);",
		},
		{
			name: "PreservesVerseRange",
			in:   "echoing Mt 5:3-12. 7",
			want: "echoing Mt 5:3-12.",
		},
		{
			name: "PreservesYears",
			in:   "guarded by their successors since 1994. 8",
			want: "guarded by their successors since 1994.",
		},
		{
			name: "FixesParenthesisSpacing",
			in:   "a plan of sheer goodness ( cf. the prologue )",
			want: "a plan of sheer goodness (cf. the prologue)",
		},
		{
			name: "TrimsEdges",
			in:   "  42 \n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catechism.CleanText(tt.in))
		})
	}
}

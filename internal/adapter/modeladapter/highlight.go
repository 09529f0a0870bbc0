package modeladapter

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"ai-writing-assistant/internal/entity"

	"github.com/google/uuid"
)

const (
	LabelClaim    = "claim"
	LabelEvidence = "evidence"
)

// Pattern tags every match of Expr with Label.
type Pattern struct {
	Label string
	Expr  *regexp.Regexp
}

// DefaultPatterns are placeholders until a backend can classify text.
var DefaultPatterns = []Pattern{
	{Label: LabelClaim, Expr: regexp.MustCompile(`(?i)\bI think\b`)},
	{Label: LabelEvidence, Expr: regexp.MustCompile(`(?i)\bbecause\b`)},
}

type PatternScanner struct {
	patterns []Pattern
	newId    func() string
}

func NewPatternScanner(patterns ...Pattern) *PatternScanner {
	return &PatternScanner{
		patterns: patterns,
		newId:    uuid.NewString,
	}
}

// Scan returns one highlight per non-overlapping, non-empty match of each
// pattern, ordered by position. Offsets count runes, not bytes.
func (s *PatternScanner) Scan(content string) []entity.Highlight {
	highlights := make([]entity.Highlight, 0)
	for _, p := range s.patterns {
		for _, loc := range p.Expr.FindAllStringIndex(content, -1) {
			if loc[0] == loc[1] {
				continue
			}
			start := utf8.RuneCountInString(content[:loc[0]])
			highlights = append(highlights, entity.Highlight{
				Id:         s.newId(),
				LabelType:  p.Label,
				Text:       content[loc[0]:loc[1]],
				StartIndex: start,
				EndIndex:   start + utf8.RuneCountInString(content[loc[0]:loc[1]]),
			})
		}
	}

	sort.SliceStable(highlights, func(i, j int) bool {
		return highlights[i].StartIndex < highlights[j].StartIndex
	})
	return highlights
}

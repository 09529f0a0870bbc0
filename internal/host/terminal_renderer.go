package host

import (
	"fmt"
	"io"

	"ai-writing-assistant/internal/entity"

	"github.com/fatih/color"
)

// TerminalRenderer prints panel output for the command line client.
type TerminalRenderer struct {
	out     io.Writer
	heading *color.Color
	item    *color.Color
	mark    *color.Color
	notice  *color.Color
}

var _ Renderer = &TerminalRenderer{}

func NewTerminalRenderer(out io.Writer, colored bool) *TerminalRenderer {
	r := &TerminalRenderer{
		out:     out,
		heading: color.New(color.Bold, color.FgCyan),
		item:    color.New(color.FgWhite),
		mark:    color.New(color.FgBlack, color.BgYellow),
		notice:  color.New(color.FgRed),
	}
	if !colored {
		for _, c := range []*color.Color{r.heading, r.item, r.mark, r.notice} {
			c.DisableColor()
		}
	}
	return r
}

func (r *TerminalRenderer) RenderQuestions(questions []string) {
	r.heading.Fprintln(r.out, "Questions")
	if len(questions) == 0 {
		r.item.Fprintln(r.out, "  (nothing to ask yet)")
		return
	}
	for _, q := range questions {
		r.item.Fprintf(r.out, "  • %s\n", q)
	}
}

func (r *TerminalRenderer) RenderHighlights(content string, highlights []entity.Highlight) {
	r.heading.Fprintln(r.out, "Highlights")
	if len(highlights) == 0 {
		r.item.Fprintln(r.out, "  (no highlights)")
		return
	}
	for _, h := range highlights {
		r.item.Fprintf(r.out, "  [%s] %d-%d %q\n", h.LabelType, h.StartIndex, h.EndIndex, h.Text)
	}

	// Highlights are sorted and disjoint, so one pass over the runes is enough.
	runes := []rune(content)
	cursor := 0
	for _, h := range highlights {
		if h.StartIndex < cursor || h.EndIndex > len(runes) {
			continue
		}
		fmt.Fprint(r.out, string(runes[cursor:h.StartIndex]))
		r.mark.Fprint(r.out, string(runes[h.StartIndex:h.EndIndex]))
		cursor = h.EndIndex
	}
	fmt.Fprintln(r.out, string(runes[cursor:]))
}

func (r *TerminalRenderer) RenderMetadata(documentId string, metadata entity.Metadata) {
	r.heading.Fprintln(r.out, documentId)
	state := "off"
	if metadata.AssistantOn {
		state = "on"
	}
	r.item.Fprintf(r.out, "  assistant: %s\n", state)
	if metadata.Title != nil {
		r.item.Fprintf(r.out, "  title: %s\n", *metadata.Title)
	}
}

func (r *TerminalRenderer) Notice(message string) {
	r.notice.Fprintln(r.out, message)
}

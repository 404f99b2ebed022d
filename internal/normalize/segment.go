// Package normalize turns free-text plan replies into typed plans. Text is
// first split into labeled spans, then each span is read by a field
// extractor.
package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rcliao/fitplan/internal/model"
)

// Label is a section name and the spellings that introduce it.
type Label struct {
	Name    string
	Aliases []string
}

// Span is the text owned by one label occurrence. Start and End are byte
// offsets of the untrimmed span in the source text.
type Span struct {
	Label string
	Text  string
	Start int
	End   int
}

// Segmenter splits text on a fixed label set.
type Segmenter struct {
	labels   []Label
	patterns []*regexp.Regexp
}

// NewSegmenter compiles a label set. A label occurrence is any alias,
// case-insensitive, optionally wrapped in markdown emphasis, followed by an
// ASCII or full-width colon.
func NewSegmenter(labels ...Label) *Segmenter {
	s := &Segmenter{labels: labels}
	for _, l := range labels {
		alts := make([]string, 0, len(l.Aliases))
		for _, a := range l.Aliases {
			q := regexp.QuoteMeta(a)
			if r, _ := utf8.DecodeRuneInString(a); r < utf8.RuneSelf {
				q = `\b` + q + `\b`
			}
			alts = append(alts, q)
		}
		s.patterns = append(s.patterns, regexp.MustCompile(
			`(?i)[*_#]*[ \t]*(?:`+strings.Join(alts, "|")+`)[ \t]*[*_]*[ \t]*[:：][*_]*`))
	}
	return s
}

// Segment returns the spans of text in source order. Only the first
// occurrence of a label opens a span; each span ends where the next opened
// span's label begins, or at the end of text. Labels that never occur are
// absent from the result.
func (s *Segmenter) Segment(text string) []Span {
	type hit struct {
		name       string
		start, end int
	}
	var hits []hit
	for i, re := range s.patterns {
		if loc := re.FindStringIndex(text); loc != nil {
			hits = append(hits, hit{name: s.labels[i].Name, start: loc[0], end: loc[1]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	spans := make([]Span, 0, len(hits))
	for i, h := range hits {
		// Overlapping matches keep the earlier label.
		if i > 0 && h.start < hits[i-1].end {
			continue
		}
		end := len(text)
		for _, next := range hits[i+1:] {
			if next.start >= h.end {
				end = next.start
				break
			}
		}
		spans = append(spans, Span{
			Label: h.name,
			Text:  strings.TrimSpace(text[h.end:end]),
			Start: h.end,
			End:   end,
		})
	}
	return spans
}

// Segment splits text with a one-off Segmenter for labels.
func Segment(text string, labels []Label) []Span {
	return NewSegmenter(labels...).Segment(text)
}

// Find returns the span for label.
func Find(spans []Span, label string) (Span, bool) {
	for _, sp := range spans {
		if sp.Label == label {
			return sp, true
		}
	}
	return Span{}, false
}

// DayLabels are the weekday labels, English and Chinese.
var DayLabels = []Label{
	{Name: string(model.Monday), Aliases: []string{"Monday", "周一", "星期一"}},
	{Name: string(model.Tuesday), Aliases: []string{"Tuesday", "周二", "星期二"}},
	{Name: string(model.Wednesday), Aliases: []string{"Wednesday", "周三", "星期三"}},
	{Name: string(model.Thursday), Aliases: []string{"Thursday", "周四", "星期四"}},
	{Name: string(model.Friday), Aliases: []string{"Friday", "周五", "星期五"}},
	{Name: string(model.Saturday), Aliases: []string{"Saturday", "周六", "星期六"}},
	{Name: string(model.Sunday), Aliases: []string{"Sunday", "周日", "星期日", "星期天"}},
}

// SlotLabels are the meal slot labels, English and Chinese.
var SlotLabels = []Label{
	{Name: string(model.Breakfast), Aliases: []string{"Breakfast", "早餐"}},
	{Name: string(model.Lunch), Aliases: []string{"Lunch", "午餐"}},
	{Name: string(model.Dinner), Aliases: []string{"Dinner", "晚餐"}},
	{Name: string(model.Snack), Aliases: []string{"Snack", "Snacks", "加餐", "零食"}},
}

var (
	daySegmenter  = NewSegmenter(DayLabels...)
	slotSegmenter = NewSegmenter(SlotLabels...)
)

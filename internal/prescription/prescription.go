// Package prescription reads set and repetition tokens out of free-form
// exercise text such as "4 sets, 8-10 reps" or "3组，15次/侧".
package prescription

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rcliao/fitplan/internal/model"
)

var (
	setsRegex   = regexp.MustCompile(`(?i)(\d+)\s*(sets?|组)`)
	repsRegex   = regexp.MustCompile(`(?i)(\d+(?:\s*[-–~]\s*\d+)?)\s*(reps?|次|seconds?|secs?|秒|minutes?|mins?|分钟)(\s*(?:/|per\s+)\s*(?:side|侧))?`)
	crossRegex  = regexp.MustCompile(`(\d+)\s*[x×]\s*(\d+(?:\s*-\s*\d+)?)`)
	spaceRegex  = regexp.MustCompile(`\s+`)
	rangeRegex  = regexp.MustCompile(`\s*[-–~]\s*`)
	unitAliases = map[string]string{
		"rep": "reps", "reps": "reps", "次": "reps",
		"sec": "sec", "secs": "sec", "second": "sec", "seconds": "sec", "秒": "sec",
		"min": "min", "mins": "min", "minute": "min", "minutes": "min", "分钟": "min",
	}
)

// Tokens holds the extracted volume. Found* report whether the value came
// from the text or is a default.
type Tokens struct {
	Sets      string
	Reps      string
	FoundSets bool
	FoundReps bool
}

// Parse extracts sets and reps from text, defaulting to 3 sets and 10 reps.
func Parse(text string) Tokens {
	t := Tokens{Sets: model.DefaultSets, Reps: model.DefaultReps}

	if m := setsRegex.FindStringSubmatch(text); m != nil {
		t.Sets = formatSets(m[1])
		t.FoundSets = true
	}
	if m := repsRegex.FindStringSubmatch(text); m != nil {
		t.Reps = formatReps(m[1], m[2], m[3] != "")
		t.FoundReps = true
	}

	// "4x8" shorthand
	if !t.FoundSets && !t.FoundReps {
		if m := crossRegex.FindStringSubmatch(text); m != nil {
			t.Sets = formatSets(m[1])
			t.Reps = formatReps(m[2], "reps", false)
			t.FoundSets, t.FoundReps = true, true
		}
	}
	return t
}

func formatSets(n string) string {
	if v, _ := strconv.Atoi(n); v == 1 {
		return "1 set"
	}
	return n + " sets"
}

func formatReps(count, unit string, perSide bool) string {
	count = rangeRegex.ReplaceAllString(spaceRegex.ReplaceAllString(count, ""), "-")
	u, ok := unitAliases[strings.ToLower(unit)]
	if !ok {
		u = unit
	}
	s := count + " " + u
	if perSide {
		s += "/side"
	}
	return s
}

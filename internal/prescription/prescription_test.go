package prescription

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		sets  string
		reps  string
		found bool
	}{
		{"sets and reps", "3 sets, 10 reps", "3 sets", "10 reps", true},
		{"rep range", "4 sets of 8-10 reps", "4 sets", "8-10 reps", true},
		{"per side", "3 sets, 15 reps/side", "3 sets", "15 reps/side", true},
		{"seconds", "3 sets, 45 sec", "3 sets", "45 sec", true},
		{"minutes only", "20 min, moderate intensity", "3 sets", "20 min", true},
		{"interval", "30 sec work, 30 sec rest", "3 sets", "30 sec", true},
		{"chinese", "4组，12次", "4 sets", "12 reps", true},
		{"chinese per side", "3组，10次/侧", "3 sets", "10 reps/side", true},
		{"chinese minutes", "20分钟，中等强度", "3 sets", "20 min", true},
		{"cross shorthand", "Bench press 5x5", "5 sets", "5 reps", true},
		{"single set", "1 set to failure", "1 set", "10 reps", true},
		{"nothing", "go for a walk", "3 sets", "10 reps", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if got.Sets != tt.sets {
				t.Errorf("sets = %q, want %q", got.Sets, tt.sets)
			}
			if got.Reps != tt.reps {
				t.Errorf("reps = %q, want %q", got.Reps, tt.reps)
			}
			if (got.FoundSets || got.FoundReps) != tt.found {
				t.Errorf("found = %v, want %v", got.FoundSets || got.FoundReps, tt.found)
			}
		})
	}
}

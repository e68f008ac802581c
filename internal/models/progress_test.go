package models

import "testing"

func TestApplyResetsOnMiss(t *testing.T) {
	testCases := []struct {
		name     string
		outcomes []bool
		expected int
	}{
		{"single correct", []bool{true}, 1},
		{"single incorrect", []bool{false}, 0},
		{"streak of three", []bool{true, true, true}, 3},
		{"miss resets streak", []bool{true, true, false}, 0},
		{"misses then one correct", []bool{false, false, false, true}, 1},
		{"correct then miss", []bool{true, false}, 0},
		{"recover after miss", []bool{true, false, true, true}, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &ProgressRecord{}
			for _, correct := range tc.outcomes {
				rec.Apply(correct)
			}
			if rec.CorrectAnswersCount != tc.expected {
				t.Errorf("Expected count %d, got %d", tc.expected, rec.CorrectAnswersCount)
			}
		})
	}
}

func TestLearned(t *testing.T) {
	rec := &ProgressRecord{CorrectAnswersCount: 0}
	if rec.Learned() {
		t.Error("Expected count 0 to not be learned")
	}
	rec.Apply(true)
	if !rec.Learned() {
		t.Error("Expected count 1 to be learned")
	}
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"learn", ModeLearn, false},
		{"test", ModeTest, false},
		{"exam", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			mode, err := ParseMode(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if mode != tc.want {
				t.Errorf("Expected mode %q, got %q", tc.want, mode)
			}
		})
	}
}

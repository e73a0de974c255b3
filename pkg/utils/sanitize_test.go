package utils

import (
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain title unchanged",
			input: "Midterm Feedback",
			want:  "Midterm Feedback",
		},
		{
			name:  "markup stripped",
			input: "Midterm<b> Feedback</b>",
			want:  "Midterm Feedback",
		},
		{
			name:  "script tags stripped",
			input: "<script>alert(1)</script>Review",
			want:  "alert(1)Review",
		},
		{
			name:  "whitespace collapsed and trimmed",
			input: "  Final \n Review  ",
			want:  "Final Review",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only markup",
			input: "<br/>",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.input); got != tt.want {
				t.Errorf("SanitizeTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail(" Some.One@Uni.EDU \n"); got != "some.one@uni.edu" {
		t.Errorf("SanitizeEmail() = %q", got)
	}
}

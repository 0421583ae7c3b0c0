package analyzer

import (
	"reflect"
	"testing"
)

func TestExtractTopics(t *testing.T) {
	a := New(Config{})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "repeated word ranks first",
			text: "coding tips for coding fans who enjoy coding daily",
			want: []string{"Coding", "Coding Tips", "Tips Coding", "Coding Fans", "Fans Enjoy"},
		},
		{
			name: "stop words fall back to defaults",
			text: "the and but for was has",
			want: []string{"General", "Content"},
		},
		{
			name: "long single words survive without repeats",
			text: "innovation drives progress",
			want: []string{"Innovation", "Progress", "Innovation Drives", "Drives Progress"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.extractTopics(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractTopics(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractTopicsCapsAtFive(t *testing.T) {
	a := New(Config{})
	text := "mountains rivers forests deserts glaciers volcanoes prairies canyons " +
		"mountains rivers forests deserts glaciers volcanoes prairies canyons"

	got := a.extractTopics(text)
	if len(got) != 5 {
		t.Fatalf("got %d topics, want 5: %v", len(got), got)
	}
	for _, topic := range got {
		if topic[0] < 'A' || topic[0] > 'Z' {
			t.Errorf("topic %q is not capitalized", topic)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"coding", "Coding"},
		{"machine learning", "Machine Learning"},
		{"a", "A"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectContentType(t *testing.T) {
	a := New(Config{})

	tests := []struct {
		name string
		text string
		want string
	}{
		{"technology", "new software and code for every programming team", "technology"},
		{"business", "startup marketing and sales drive business growth", "business"},
		{"lifestyle", "health fitness and travel improve life", "lifestyle"},
		{"creative", "design art and photo inspiration", "creative"},
		{"education", "study tips and a tutorial guide", "education"},
		{"no category keywords", "nothing relevant appears anywhere", ContentTypeGeneral},
		{"tie keeps earlier category", "software business", "technology"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.detectContentType(tt.text); got != tt.want {
				t.Errorf("detectContentType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

package vocab

import (
	"reflect"
	"testing"
)

func TestExtract_SampleTranscript(t *testing.T) {
	got := Extract("I really enjoyed watching sunsets yesterday")
	want := []string{"really", "enjoyed", "watching", "sunsets", "yesterday"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_ShortWordsDiscarded(t *testing.T) {
	got := Extract("I am on the way to you")
	if len(got) != 0 {
		t.Errorf("Expected no words of length <= 3, got %v", got)
	}
}

func TestExtract_DuplicatesKeepFirstPosition(t *testing.T) {
	got := Extract("Sunset after sunset, every SUNSET matters more")
	want := []string{"sunset", "after", "every", "matters", "more"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_PunctuationDiscarded(t *testing.T) {
	got := Extract("well... hello, world!!! (really)")
	want := []string{"well", "hello", "world", "really"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	text := "Deterministic transforms always return identical sequences"

	first := Extract(text)
	second := Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not deterministic: %v vs %v", first, second)
	}
}

func TestExtract_UnicodeWords(t *testing.T) {
	// Rune count, not byte count, decides what is "too short".
	got := Extract("мен сизни кўрдим")
	want := []string{"сизни", "кўрдим"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_Empty(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Errorf("Extract(\"\") = %v, want empty", got)
	}
	if got := Extract("!!! ... ???"); len(got) != 0 {
		t.Errorf("Extract(punctuation) = %v, want empty", got)
	}
}

func TestExtract_UnderscoreIsWordCharacter(t *testing.T) {
	got := Extract("snake_case identifiers survive tokenizing")
	want := []string{"snake_case", "identifiers", "survive", "tokenizing"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

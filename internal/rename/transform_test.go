package rename

import "testing"

func TestSplitName(t *testing.T) {
	tests := []struct {
		name     string
		wantStem string
		wantExt  string
	}{
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"photo.JPG", "photo", ".JPG"},
		{"noext", "noext", ""},
		{".bashrc", ".bashrc", ""},
		{"..x", ".", ".x"},
		{"foo.", "foo", "."},
		{"x...", "x", "."},
		{"x.a.a", "x", ".a"},
		{"notes.txt.txt", "notes", ".txt"},
	}
	for _, tt := range tests {
		stem, ext := SplitName(tt.name)
		if stem != tt.wantStem || ext != tt.wantExt {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.name, stem, ext, tt.wantStem, tt.wantExt)
		}
	}
}

func TestFirstLetter(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{FirstLetterUpper, "", ""},
		{FirstLetterUpper, "1abc", "1abc"},
		{FirstLetterUpper, "abc", "Abc"},
		{FirstLetterUpper, " abc", " abc"},
		{FirstLetterUpper, "éclair", "Éclair"},
		{FirstLetterUpper, "ßx", "SSx"},
		{FirstLetterUpper, "Abc", "Abc"},
		{FirstLetterLower, "Abc", "abc"},
		{FirstLetterLower, "ABC", "aBC"},
		{FirstLetterLower, "_Abc", "_Abc"},
		{FirstLetterLower, "", ""},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCaseMapping(t *testing.T) {
	if got := ToUpper("straße"); got != "STRASSE" {
		t.Errorf("ToUpper(straße) = %q", got)
	}
	if got := ToLower("Photo_01"); got != "photo_01" {
		t.Errorf("ToLower = %q", got)
	}
	if got := ToUpper("Photo_01"); got != "PHOTO_01" {
		t.Errorf("ToUpper = %q", got)
	}
}

func TestCaseMappingIdempotent(t *testing.T) {
	samples := []string{"", "abc", "Straße", "ǅemal", "ΣΑΣ", "İstanbul", "mixed_Case 42", "日本語"}
	for _, s := range samples {
		if u := ToUpper(s); ToUpper(u) != u {
			t.Errorf("ToUpper not idempotent for %q", s)
		}
		if l := ToLower(s); ToLower(l) != l {
			t.Errorf("ToLower not idempotent for %q", s)
		}
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		mode Mode
		in   string
		want string
	}{
		{Uppercase, "photo", "PHOTO"},
		{Lowercase, "PHOTO", "photo"},
		{FirstLetterUppercase, "photo", "Photo"},
		{FirstLetterLowercase, "Photo", "photo"},
		{SequentialRename, "photo", "photo"},
	}
	for _, tt := range tests {
		if got := Transform(tt.mode, tt.in); got != tt.want {
			t.Errorf("Transform(%v, %q) = %q, want %q", tt.mode, tt.in, got, tt.want)
		}
	}
}

func TestSequentialName(t *testing.T) {
	if got := SequentialName("img", 12); got != "img_12" {
		t.Errorf("SequentialName = %q", got)
	}
}

package rename

import (
	"errors"
	"testing"

	"github.com/starford/brf/internal/apperr"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantMode   Mode
		wantPrefix string
	}{
		{"prefix", []string{"./files", "img"}, SequentialRename, "img"},
		{"empty prefix", []string{"./files", ""}, SequentialRename, ""},
		{"uppercase long", []string{"./files", "--uppercase"}, Uppercase, ""},
		{"uppercase short", []string{"./files", "-u"}, Uppercase, ""},
		{"lowercase long", []string{"./files", "--lowercase"}, Lowercase, ""},
		{"lowercase short", []string{"./files", "-l"}, Lowercase, ""},
		{"first upper long", []string{"./files", "--first-letter-uppercase"}, FirstLetterUppercase, ""},
		{"first upper short", []string{"./files", "-U"}, FirstLetterUppercase, ""},
		{"first lower long", []string{"./files", "--first-letter-lowercase"}, FirstLetterLowercase, ""},
		{"first lower short", []string{"./files", "-L"}, FirstLetterLowercase, ""},
		{"single dash long form is a prefix", []string{"./files", "-uppercase"}, SequentialRename, "-uppercase"},
		{"case sensitive", []string{"./files", "--UPPERCASE"}, SequentialRename, "--UPPERCASE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("ParseArgs: %v", err)
			}
			if cfg.Dir != "./files" {
				t.Errorf("Dir = %q", cfg.Dir)
			}
			if cfg.Mode != tt.wantMode {
				t.Errorf("Mode = %v, want %v", cfg.Mode, tt.wantMode)
			}
			if cfg.Prefix != tt.wantPrefix {
				t.Errorf("Prefix = %q, want %q", cfg.Prefix, tt.wantPrefix)
			}
		})
	}
}

func TestParseArgs_WrongCount(t *testing.T) {
	for _, args := range [][]string{nil, {"./files"}, {"./files", "img", "-u"}} {
		if _, err := ParseArgs(args); !errors.Is(err, apperr.ErrUsage) {
			t.Errorf("ParseArgs(%q) err = %v, want ErrUsage", args, err)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Dir: ".", Mode: Lowercase}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	if err := (Config{Dir: ".", Mode: Mode(42)}).Validate(); err == nil {
		t.Error("unknown mode should fail validation")
	}
}

func TestModeBanner(t *testing.T) {
	if got := SequentialRename.Banner("img"); got != "Renaming files to: `img_xx`" {
		t.Errorf("banner = %q", got)
	}
	if got := FirstLetterLowercase.Banner(""); got != "Renaming files first letter to lowercase" {
		t.Errorf("banner = %q", got)
	}
}

package checksum

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestSumReader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, tt := range tests {
		got, err := SumReader(strings.NewReader(tt.in))
		if err != nil {
			t.Fatalf("SumReader(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("SumReader(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSumReaderError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := SumReader(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

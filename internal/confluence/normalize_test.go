package confluence

import "testing"

func TestNormalizeStorage(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"nbsp entity vs space", "<p>hello&nbsp;world</p>", "<p>hello world</p>"},
		{"surrounding whitespace", "  <p>body</p>\n", "<p>body</p>"},
		{"accent entity vs literal", "<p>J&oacute;hann</p>", "<p>Jóhann</p>"},
		{"decomposed vs composed accents", "<p>José</p>", "<p>José</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if NormalizeStorage(tt.a) != NormalizeStorage(tt.b) {
				t.Errorf("Expected %q and %q to normalize equally", tt.a, tt.b)
			}
		})
	}
}

func TestNormalizeStorageKeepsDistinctContent(t *testing.T) {
	if NormalizeStorage("<p>one</p>") == NormalizeStorage("<p>two</p>") {
		t.Error("Expected distinct bodies to stay distinct")
	}
}

package naming

import "testing"

func TestPrefix(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "letters then digits", input: "Autoc20.mp4", want: "Autoc", wantOK: true},
		{name: "leading digit", input: "20Autoc.mp4", want: "", wantOK: false},
		{name: "all digits", input: "12345.mp4", want: "", wantOK: false},
		{name: "no digits keeps whole stem", input: "Overlay Tela Final.mp4", want: "Overlay Tela Final", wantOK: true},
		{name: "run includes spaces and keeps trailing space", input: "Overlay Tela Final 2.mp4", want: "Overlay Tela Final ", wantOK: true},
		{name: "punctuation inside run", input: "Promo-Clip_7.mov", want: "Promo-Clip_", wantOK: true},
		{name: "extension digits ignored", input: "Intro.mp4", want: "Intro", wantOK: true},
		{name: "path is reduced to base name", input: "cortes/Autoc1.mp4", want: "Autoc", wantOK: true},
		{name: "empty", input: "", want: "", wantOK: false},
		{name: "extension only", input: ".mp4", want: "", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Prefix(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("Prefix(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("Prefix(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestPrefixNormalizesUnicode(t *testing.T) {
	// "é" spelled as e + combining acute must match the precomposed form.
	decomposed := "Café Promo 1.mp4"
	precomposed := "Café Promo 1.mp4"

	gotDecomposed, ok := Prefix(decomposed)
	if !ok {
		t.Fatalf("Prefix(%q) reported no prefix", decomposed)
	}
	gotPrecomposed, ok := Prefix(precomposed)
	if !ok {
		t.Fatalf("Prefix(%q) reported no prefix", precomposed)
	}
	if gotDecomposed != gotPrecomposed {
		t.Fatalf("normalized prefixes differ: %q vs %q", gotDecomposed, gotPrecomposed)
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		candidate string
		prefix    string
		want      bool
	}{
		{candidate: "Autoc20.mp4", prefix: "Autoc", want: true},
		{candidate: "background/Autoc20.mp4", prefix: "Autoc", want: true},
		{candidate: "Autoc20.mp4", prefix: "Zeta", want: false},
		{candidate: "Autoc20.mp4", prefix: "", want: false},
		{candidate: "Café Fundo.mp4", prefix: "Café ", want: true},
	}

	for _, tc := range tests {
		if got := HasPrefix(tc.candidate, tc.prefix); got != tc.want {
			t.Errorf("HasPrefix(%q, %q) = %v, want %v", tc.candidate, tc.prefix, got, tc.want)
		}
	}
}

func TestSupportedExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "clip.mp4", want: true},
		{name: "clip.MP4", want: true},
		{name: "clip.Avi", want: true},
		{name: "clip.mov", want: true},
		{name: "clip.mkv", want: false},
		{name: "clip.mp4.txt", want: false},
		{name: "clip", want: false},
	}

	for _, tc := range tests {
		if got := SupportedExtension(tc.name); got != tc.want {
			t.Errorf("SupportedExtension(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{prefix: "Autoc", want: "Autoc"},
		{prefix: "vida nova ", want: "Vida Nova"},
		{prefix: "", want: ""},
		{prefix: "   ", want: ""},
	}

	for _, tc := range tests {
		if got := DisplayTitle(tc.prefix); got != tc.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tc.prefix, got, tc.want)
		}
	}
}

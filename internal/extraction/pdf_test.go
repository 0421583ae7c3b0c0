package extraction

import "testing"

func TestExtractTextFromStream(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "Tj operator",
			data: "BT\n(Hello World) Tj\nET",
			want: "Hello World",
		},
		{
			name: "TJ array operator",
			data: "[(Hel) -20 (lo)] TJ",
			want: "Hello",
		},
		{
			name: "positioning inserts space",
			data: "(First) Tj\n1 0 Td\n(Second) Tj",
			want: "First Second",
		},
		{
			name: "empty stream",
			data: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTextFromStream([]byte(tt.data)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`with \(parens\)`, "with (parens)"},
		{`tab\there`, "tab\there"},
		{`octal\040space`, "octal space"},
		{`back\\slash`, `back\slash`},
	}

	for _, tt := range tests {
		if got := decodePDFString([]byte(tt.in)); got != tt.want {
			t.Errorf("decodePDFString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanPDFText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  spaced\t\nout  ", "spaced out"},
		{"already clean", "already clean"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cleanPDFText(tt.in); got != tt.want {
			t.Errorf("cleanPDFText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

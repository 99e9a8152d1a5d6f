package delimited

import (
	"reflect"
	"testing"
)

func TestParseRows(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "simple rows",
			text: "a,b,c\nd,e,f\n",
			want: [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		{
			name: "unquoted cells are trimmed",
			text: " a , b ,c \n",
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "quoted comma stays literal",
			text: `"a,b",c` + "\n",
			want: [][]string{{"a,b", "c"}},
		},
		{
			name: "doubled quote decodes to one quote",
			text: `"a, b""c"` + "\n",
			want: [][]string{{`a, b"c`}},
		},
		{
			name: "quoted newline stays literal",
			text: "\"line1\nline2\",x\n",
			want: [][]string{{"line1\nline2", "x"}},
		},
		{
			name: "quoted content is not trimmed",
			text: `" padded ",x` + "\n",
			want: [][]string{{" padded ", "x"}},
		},
		{
			name: "blank lines are skipped",
			text: "a,b\n\n\nc,d\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "carriage returns are stripped",
			text: "a,b\r\nc,d\r\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "final row without newline",
			text: "a,b\nc,d",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "empty cells survive",
			text: "a,,c\n",
			want: [][]string{{"a", "", "c"}},
		},
		{
			name: "trailing comma yields empty last cell",
			text: "a,b,\n",
			want: [][]string{{"a", "b", ""}},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "stray quote mid-cell is literal",
			text: "a\"b,c\n",
			want: [][]string{{`a"b`, "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRows(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRows(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"has space", "has space"},
		{"a,b", `"a,b"`},
		{`say "hi"`, `"say ""hi"""`},
		{`both, "x"`, `"both, ""x"""`},
	}

	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRowRoundTrip(t *testing.T) {
	cells := []string{"name, with comma", `quote "inside"`, "plain"}
	text := FormatRow(cells)
	rows := ParseRows(text)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], cells) {
		t.Errorf("round trip = %#v, want %#v", rows[0], cells)
	}
}

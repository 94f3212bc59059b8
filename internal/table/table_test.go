package table

import (
	"errors"
	"strings"
	"testing"
)

func TestReadSkipsHeaderAndComments(t *testing.T) {
	in := `# ASTM G173 excerpt
Wvlgth nm,Etr W*m-2*nm-1,Global tilt W*m-2*nm-1
280.0, 0.082, 4.7309E-23
280.5, 0.099, 1.2307E-21

281.0, 0.15, 5.6895E-21
`
	cols, err := Read(strings.NewReader(in), Options{Columns: []int{0, 2}})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(cols) != 2 || len(cols[0]) != 3 {
		t.Fatalf("unexpected shape: %d columns, %d rows", len(cols), len(cols[0]))
	}
	if cols[0][2] != 281 {
		t.Fatalf("wavelength[2] = %v, want 281", cols[0][2])
	}
	if cols[1][1] != 1.2307e-21 {
		t.Fatalf("value[1] = %v, want 1.2307e-21", cols[1][1])
	}
}

func TestReadCustomDelimiter(t *testing.T) {
	cols, err := Read(strings.NewReader("1.0;1e3\n2.0;1e4\n"), Options{Comma: ';', Columns: []int{0, 1}})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cols[1][1] != 1e4 {
		t.Fatalf("got %v, want 1e4", cols[1][1])
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cols []int
		want error
	}{
		{name: "no data", in: "a,b\nc,d\n", cols: []int{0, 1}, want: ErrNoData},
		{name: "empty", in: "", cols: []int{0, 1}, want: ErrNoData},
		{name: "garbage after data", in: "1,2\nx,y\n", cols: []int{0, 1}, want: ErrBadRow},
		{name: "short row after data", in: "1,2\n3\n", cols: []int{0, 1}, want: ErrBadRow},
		{name: "no columns", in: "1,2\n", cols: nil, want: ErrBadColumns},
		{name: "negative column", in: "1,2\n", cols: []int{-1}, want: ErrBadColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), Options{Columns: tt.cols})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

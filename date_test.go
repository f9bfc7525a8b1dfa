package folio

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-31", want: "2024-01-31"},
		{in: "2020-02-29", want: "2020-02-29"}, // leap year
		{in: "2000-02-29", want: "2000-02-29"}, // divisible by 400
		{in: "2021-02-29", wantErr: true},      // not a leap year
		{in: "1900-02-29", wantErr: true},      // divisible by 100, not 400
		{in: "2021-13-01", wantErr: true},
		{in: "2021-00-01", wantErr: true},
		{in: "2021-04-31", wantErr: true},
		{in: "2021-04-00", wantErr: true},
		{in: "2021-4-01", wantErr: true}, // not zero padded
		{in: "2021/04/01", wantErr: true},
		{in: "21-04-01", wantErr: true},
		{in: "2021-04-01 ", wantErr: true},
		{in: "20x1-04-01", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) returned error: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseDate(%q).String() = %q, want %q", tc.in, got.String(), tc.want)
			}
		})
	}
}

func TestDate_Serial(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{"1970-01-01", 0},
		{"1970-01-02", 1},
		{"1970-02-01", 31},
		{"1971-01-01", 365},
		{"1972-02-29", 365 + 365 + 31 + 28}, // 1972 is a leap year
		{"1973-01-01", 365 + 365 + 366},
	}
	for _, tc := range testCases {
		if got := MustDate(tc.in).Serial(); got != tc.want {
			t.Errorf("Serial(%s) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a, b := MustDate("2024-02-28"), MustDate("2024-02-29")
	if !a.Before(b) || !b.After(a) {
		t.Errorf("expected %s < %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("date must not order before or after itself")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	in := MustDate("2023-07-09")
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2023-07-09"` {
		t.Fatalf("marshaled as %s", data)
	}
	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip got %v, want %v", out, in)
	}

	var bad Date
	if err := json.Unmarshal([]byte(`"2021-02-29"`), &bad); err == nil {
		t.Error("expected error unmarshaling an impossible date")
	}
}

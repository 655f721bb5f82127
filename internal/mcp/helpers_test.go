package mcp

import (
	"errors"
	"reflect"
	"testing"
)

func TestArgs_String(t *testing.T) {
	tests := []struct {
		name    string
		args    Args
		want    string
		wantOK  bool
		wantErr bool
	}{
		{name: "absent", args: Args{}, want: "", wantOK: false},
		{name: "null", args: Args{"v": nil}, want: "", wantOK: false},
		{name: "blank", args: Args{"v": "   "}, want: "", wantOK: false},
		{name: "verbatim", args: Args{"v": "  project = X \n"}, want: "  project = X \n", wantOK: true},
		{name: "number", args: Args{"v": 12.0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := tt.args.String("v")
			if (err != nil) != tt.wantErr {
				t.Fatalf("String() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("String() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestArgs_Ident(t *testing.T) {
	got, ok, err := Args{"v": "  PROJ-1 "}.Ident("v")
	if err != nil || !ok || got != "PROJ-1" {
		t.Errorf("Ident() = (%q, %v, %v), want (\"PROJ-1\", true, nil)", got, ok, err)
	}
	if _, ok, _ := (Args{"v": " "}).Ident("v"); ok {
		t.Error("Ident() of a blank value reported ok")
	}
}

func TestArgs_Int(t *testing.T) {
	tests := []struct {
		name    string
		args    Args
		want    int
		wantErr bool
	}{
		{name: "absent uses fallback", args: Args{}, want: 50},
		{name: "json number", args: Args{"n": 10.0}, want: 10},
		{name: "numeric string", args: Args{"n": " 25 "}, want: 25},
		{name: "empty string uses fallback", args: Args{"n": ""}, want: 50},
		{name: "fraction", args: Args{"n": 2.5}, wantErr: true},
		{name: "garbage", args: Args{"n": "many"}, wantErr: true},
		{name: "bool", args: Args{"n": true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.args.Int("n", 50)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Int() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *InvalidArgumentError
				if !errors.As(err, &invalid) || invalid.Argument != "n" {
					t.Errorf("expected InvalidArgumentError for n, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestArgs_StringList(t *testing.T) {
	tests := []struct {
		name    string
		args    Args
		want    []string
		wantErr bool
	}{
		{name: "absent", args: Args{}, want: nil},
		{name: "array", args: Args{"l": []any{"backend", " api "}}, want: []string{"backend", "api"}},
		{name: "comma string", args: Args{"l": "a, b,,c"}, want: []string{"a", "b", "c"}},
		{name: "mixed array", args: Args{"l": []any{"a", 1.0}}, wantErr: true},
		{name: "object", args: Args{"l": map[string]any{}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.args.StringList("l")
			if (err != nil) != tt.wantErr {
				t.Fatalf("StringList() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringList() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-05T09:15:00.000+0000", "3/5/2024"},
		{"2023-12-31T23:59:59.000-0800", "12/31/2023"},
		{"2024-01-09T10:00:00Z", "1/9/2024"},
		{"yesterday", "yesterday"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

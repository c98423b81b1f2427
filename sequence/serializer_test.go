package sequence

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSerialize(t *testing.T) {
	runs := []Run{Single(1), Double(2), Double(1)}
	tests := []struct {
		id   int
		flag int
		want []string
	}{
		{
			1,
			SerializeStep | SerializeValue | SerializeLength,
			[]string{
				"[",
				`{"step":0,"value":1,"length":1},`,
				`{"step":1,"value":2,"length":2},`,
				`{"step":2,"value":1,"length":2}`,
				"]",
			},
		},
		{
			2,
			SerializeValue | SerializeLength,
			[]string{
				"[",
				`{"value":1,"length":1},`,
				`{"value":2,"length":2},`,
				`{"value":1,"length":2}`,
				"]",
			},
		},
		{
			3,
			SerializeLength,
			[]string{"[", `{"length":1},`, `{"length":2},`, `{"length":2}`, "]"},
		},
		{
			4,
			0,
			[]string{"[", "{},", "{},", "{}", "]"},
		},
	}
	for _, tt := range tests {
		got := Serialize(runs, tt.flag)
		if v := []byte(strings.Join(tt.want, "")); !bytes.Equal(got, v) {
			t.Fatalf("test %d:\ngot  %s\nwant %s", tt.id, got, v)
		}
		if !json.Valid(got) {
			t.Fatalf("test %d: invalid JSON %s", tt.id, got)
		}
	}
}

func TestSerializeEmpty(t *testing.T) {
	if got := Serialize(nil, SerializeValue); !bytes.Equal(got, []byte("[]")) {
		t.Fatalf("got %s, want []", got)
	}
}

func TestSerializeOffset(t *testing.T) {
	got := serialize([]Run{Single(2)}, 41, SerializeStep)
	want := []byte(`[{"step":41}]`)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		id   int
		runs []Run
		want string
	}{
		{1, nil, ""},
		{2, []Run{Single(1)}, "Single(1)"},
		{3, testFirstRuns[:4], "Single(1), Double(2,2), Double(1,1), Single(2)"},
	}
	for _, tt := range tests {
		if got := string(Format(tt.runs)); got != tt.want {
			t.Fatalf("test %d: got %q, want %q", tt.id, got, tt.want)
		}
	}
}

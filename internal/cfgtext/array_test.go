package cfgtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ossyrian/a3cfg/internal/cfgtext"
)

func TestFormatArray(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "nil", values: nil, want: ""},
		{name: "empty", values: []string{}, want: ""},
		{name: "single empty element", values: []string{""}, want: ""},
		{name: "two elements", values: []string{"a", "b"}, want: "{\n\t\"a\"\n\t,\"b\"\n}"},
		{name: "single element", values: []string{"127.0.0.1"}, want: "{\n\t\"127.0.0.1\"\n}"},
		{name: "plain spaces kept", values: []string{"Welcome to our server"}, want: "{\n\t\"Welcome to our server\"\n}"},
		{name: "control whitespace stripped", values: []string{"a\tb\r\nc"}, want: "{\n\t\"abc\"\n}"},
		{name: "quotes stripped", values: []string{`say "hi"`}, want: "{\n\t\"say hi\"\n}"},
		{name: "blank element collapses", values: []string{"a", "  \t "}, want: "{\n\t\"a\"\n\t,\"\"\n}"},
		{name: "empty element among others", values: []string{"", "b"}, want: "{\n\t\"\"\n\t,\"b\"\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfgtext.FormatArray(tt.values))
		})
	}
}

func TestFormatArray_Idempotent(t *testing.T) {
	clean := []string{"co10_Escape.Altis", "MP_Warlords.Tanoa"}
	quoted := []string{`"co10_Escape.Altis"`, `"MP_Warlords.Tanoa"`}

	assert.Equal(t, cfgtext.FormatArray(clean), cfgtext.FormatArray(quoted))
}

func TestFormatArray_DoesNotMutateInput(t *testing.T) {
	in := []string{"a\tb", `"c"`}

	cfgtext.FormatArray(in)

	assert.Equal(t, []string{"a\tb", `"c"`}, in)
}

func TestParseArray(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    []string
		wantErr bool
	}{
		{name: "formatted", literal: "{\n\t\"a\"\n\t,\"b\"\n}", want: []string{"a", "b"}},
		{name: "single line", literal: `{"a", "b"}`, want: []string{"a", "b"}},
		{name: "empty", literal: "{}", want: []string{}},
		{name: "bare numbers", literal: "{0, 1, 0, 1}", want: []string{"0", "1", "0", "1"}},
		{name: "comma inside quotes", literal: `{"a,b", "c"}`, want: []string{"a,b", "c"}},
		{name: "trailing comma", literal: `{"a",}`, want: []string{"a"}},
		{name: "no braces", literal: `"a"`, wantErr: true},
		{name: "unterminated string", literal: `{"a}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfgtext.ParseArray(tt.literal)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArray_InvertsFormatArray(t *testing.T) {
	values := []string{"admin one", "76561198000000001", ""}

	got, err := cfgtext.ParseArray(cfgtext.FormatArray(values))
	require.NoError(t, err)

	assert.Equal(t, values, got)
}

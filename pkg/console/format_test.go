package console

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprint(t *testing.T) {
	cases := []struct {
		name   string
		styled bool
		args   []any
		want   string
	}{
		{"empty", false, nil, ""},
		{"plain words", false, []any{"hello", "world", 42}, "hello world 42"},
		{"non-string head", false, []any{42, "x"}, "42 x"},
		{"string directive", false, []any{"[%s] %s", "INFO", "Test", "Hello !!"}, "[INFO] Test Hello !!"},
		{"integer", false, []any{"%d items", 3.9}, "3 items"},
		{"integer from string", false, []any{"%i", "12"}, "12"},
		{"integer from garbage", false, []any{"%d", "abc"}, "NaN"},
		{"integer from nan", false, []any{"%d", math.NaN()}, "NaN"},
		{"float", false, []any{"%f", 1.5}, "1.5"},
		{"object", false, []any{"%o", struct{ A int }{1}}, "{A:1}"},
		{"percent", false, []any{"100%%"}, "100%"},
		{"missing argument", false, []any{"%s and %s", "a"}, "a and %s"},
		{"unknown directive", false, []any{"%x", 1}, "%x 1"},
		{"trailing percent", false, []any{"50%"}, "50%"},
		{"plain drops styles", false, []any{"%c%s%c", "color:red", "P", ""}, "P"},
		{
			"styled prefix",
			true,
			[]any{"[%s] %c%s%c", "INFO", "color:#F2777A;font-weight:bold;", "Test", "", "Hello !!"},
			"[INFO] \x1b[0;38;2;242;119;122;1mTest\x1b[0m Hello !!",
		},
		{"styled left open", true, []any{"%cwarn", "color:red"}, "\x1b[0;38;2;255;0;0mwarn\x1b[0m"},
		{"unrecognised style", true, []any{"%cx", "margin:0"}, "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sprint(tc.styled, tc.args...))
		})
	}
}

func TestCSSToANSI(t *testing.T) {
	assert.Equal(t, sgrReset, CSSToANSI(""))
	assert.Equal(t, "\x1b[0;38;2;17;34;51m", CSSToANSI("color: #123"))
	assert.Equal(t, "\x1b[0;48;2;1;2;3;3;4m", CSSToANSI("background-color: rgb(1, 2, 3); font-style: italic; text-decoration: underline"))
	assert.Equal(t, "\x1b[0;1m", CSSToANSI("font-weight: 700"))
	assert.Equal(t, "", CSSToANSI("color: #zzzzzz"))
	assert.Equal(t, "", CSSToANSI("nonsense"))
}

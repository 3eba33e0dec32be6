package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	cases := map[string]Level{
		"DEBUG":   Debug,
		"debug":   Debug,
		"info":    Info,
		"Info":    Info,
		"warn":    Warn,
		"WARN":    Warn,
		"error":   Error,
		"off":     Off,
		" off ":   Debug,
		"warn\n":  Debug,
		"\tERROR":  Debug,
		"bogus":   Debug,
		"warning": Debug,
		"":        Debug,
	}
	for in, want := range cases {
		assert.Equal(t, want, FromString(in), "FromString(%q)", in)
	}
}

func TestOrdering(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		assert.Less(t, int(all[i-1]), int(all[i]))
	}
	assert.Equal(t, 2, int(FromString("warn")))
	assert.Equal(t, 0, int(FromString("DEBUG")))
}

func TestString(t *testing.T) {
	for _, l := range All() {
		assert.Equal(t, l, FromString(l.String()))
	}
	assert.Equal(t, "5", Level(5).String())
}

func TestEnabled(t *testing.T) {
	assert.True(t, Warn.Enabled(Error))
	assert.True(t, Warn.Enabled(Warn))
	assert.False(t, Warn.Enabled(Info))
	for _, l := range []Level{Debug, Info, Warn, Error} {
		assert.False(t, Off.Enabled(l))
	}
}

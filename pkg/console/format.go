package console

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

const sgrReset = "\x1b[0m"

// Sprint renders console arguments the way a browser console does: a leading
// string may carry %s, %d, %i, %f, %o, %O and %c directives which consume the
// following arguments, and whatever is left is appended space separated.
// A directive without an argument is kept as written. When styled is true, %c
// turns its CSS argument into ANSI SGR sequences; otherwise %c is dropped.
func Sprint(styled bool, args ...any) string {
	if len(args) == 0 {
		return ""
	}

	var b strings.Builder
	rest := args
	open := false

	if f, ok := args[0].(string); ok {
		rest = args[1:]
		for i := 0; i < len(f); i++ {
			ch := f[i]
			if ch != '%' || i+1 >= len(f) {
				b.WriteByte(ch)
				continue
			}
			verb := f[i+1]
			if verb == '%' {
				b.WriteByte('%')
				i++
				continue
			}
			if !strings.ContainsRune("sdifoOc", rune(verb)) || len(rest) == 0 {
				b.WriteByte(ch)
				continue
			}
			arg := rest[0]
			rest = rest[1:]
			i++

			switch verb {
			case 's':
				b.WriteString(fmt.Sprint(arg))
			case 'd', 'i':
				b.WriteString(formatInt(arg))
			case 'f':
				b.WriteString(formatFloat(arg))
			case 'o', 'O':
				fmt.Fprintf(&b, "%+v", arg)
			case 'c':
				if !styled {
					continue
				}
				sgr := CSSToANSI(fmt.Sprint(arg))
				if sgr == "" {
					continue
				}
				b.WriteString(sgr)
				open = sgr != sgrReset
			}
		}
	}

	for _, v := range rest {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprint(v))
	}
	if open {
		b.WriteString(sgrReset)
	}
	return b.String()
}

func toFloat(arg any) (float64, bool) {
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		return f, err == nil
	}
	return 0, false
}

func formatInt(arg any) string {
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	}
	f, ok := toFloat(arg)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return "NaN"
	}
	return strconv.FormatFloat(math.Trunc(f), 'f', -1, 64)
}

func formatFloat(arg any) string {
	f, ok := toFloat(arg)
	if !ok || math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var namedColors = map[string][3]uint8{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"lime":    {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
}

// CSSToANSI translates the subset of inline CSS a console prefix uses into an
// ANSI SGR sequence. An empty style resets; a style with nothing recognisable
// yields "".
func CSSToANSI(css string) string {
	if strings.TrimSpace(css) == "" {
		return sgrReset
	}

	var codes []string
	for _, decl := range strings.Split(css, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.ToLower(strings.TrimSpace(v))

		switch k {
		case "color":
			if rgb, ok := parseColor(v); ok {
				codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", rgb[0], rgb[1], rgb[2]))
			}
		case "background", "background-color":
			if rgb, ok := parseColor(v); ok {
				codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", rgb[0], rgb[1], rgb[2]))
			}
		case "font-weight":
			if n, err := strconv.Atoi(v); v == "bold" || v == "bolder" || (err == nil && n >= 600) {
				codes = append(codes, "1")
			}
		case "font-style":
			if v == "italic" || v == "oblique" {
				codes = append(codes, "3")
			}
		case "text-decoration", "text-decoration-line":
			if strings.Contains(v, "underline") {
				codes = append(codes, "4")
			}
			if strings.Contains(v, "line-through") {
				codes = append(codes, "9")
			}
		}
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[0;" + strings.Join(codes, ";") + "m"
}

func parseColor(v string) ([3]uint8, bool) {
	if rgb, ok := namedColors[v]; ok {
		return rgb, true
	}
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		parts := strings.Split(v[4:len(v)-1], ",")
		if len(parts) != 3 {
			return [3]uint8{}, false
		}
		var rgb [3]uint8
		for i, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return [3]uint8{}, false
			}
			rgb[i] = uint8(n)
		}
		return rgb, true
	}
	if !strings.HasPrefix(v, "#") {
		return [3]uint8{}, false
	}
	hex := v[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return [3]uint8{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [3]uint8{}, false
	}
	return [3]uint8{uint8(n >> 16), uint8(n >> 8), uint8(n)}, true
}

package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a color written as "#rrggbb" or "#rrggbbaa" in YAML
type Color struct {
	color.NRGBA
}

// Hex builds a Color from 0xRRGGBB
func Hex(rgb uint32) Color {
	return Color{color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}}
}

// UnmarshalYAML parses a hex color string
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional)
func ParseColor(v string) (Color, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color format: %s", v)
		}
		return uint8(n), nil
	}

	var out [4]uint8
	out[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		b, err := parse(i * 2)
		if err != nil {
			return Color{}, err
		}
		out[i] = b
	}
	return Color{color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}}, nil
}

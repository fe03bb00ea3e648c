package render

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// MaterialDefPath is the default location of the voxel material definition.
const MaterialDefPath = "assets/material.yaml"

// MaterialDef is the YAML definition of the single flat material applied to
// the voxelized surface (assets/material.yaml). All fields are optional.
type MaterialDef struct {
	Color    string     `yaml:"color,omitempty"`     // hex, #RGB or #RRGGBB
	LightDir [3]float32 `yaml:"light_dir,omitempty"` // direction to the light
	Ambient  float32    `yaml:"ambient,omitempty"`   // 0..1
}

// DefaultMaterialDef matches the warm matte look of the reference viewer.
func DefaultMaterialDef() MaterialDef {
	return MaterialDef{
		Color:    "#CCB299",
		LightDir: [3]float32{0.5, 1, 0.6},
		Ambient:  0.25,
	}
}

// LoadMaterialDef reads a material definition. A missing file yields the
// default definition without error; a malformed file is an error.
func LoadMaterialDef(path string) (MaterialDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultMaterialDef(), nil
		}
		return MaterialDef{}, err
	}
	def := DefaultMaterialDef()
	if err := yaml.Unmarshal(data, &def); err != nil {
		return MaterialDef{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if def.LightDir == [3]float32{} {
		def.LightDir = DefaultMaterialDef().LightDir
	}
	if def.Ambient <= 0 || def.Ambient > 1 {
		def.Ambient = DefaultMaterialDef().Ambient
	}
	return def, nil
}

// color resolves the hex color, falling back to the default on a bad value.
func (d MaterialDef) color() rl.Color {
	if c, ok := ParseHexColor(d.Color); ok {
		return c
	}
	c, _ := ParseHexColor(DefaultMaterialDef().Color)
	return c
}

// ParseHexColor parses "#RGB" or "#RRGGBB" into an opaque color.
func ParseHexColor(s string) (rl.Color, bool) {
	if len(s) >= 4 && s[0] == '#' {
		hex := s[1:]
		var r, g, b uint8
		switch len(hex) {
		case 3:
			r = hexByte(hex[0]) * 17
			g = hexByte(hex[1]) * 17
			b = hexByte(hex[2]) * 17
		case 6:
			r = hexByte(hex[0])<<4 + hexByte(hex[1])
			g = hexByte(hex[2])<<4 + hexByte(hex[3])
			b = hexByte(hex[4])<<4 + hexByte(hex[5])
		default:
			return rl.Black, false
		}
		return rl.NewColor(r, g, b, 255), true
	}
	return rl.Black, false
}

func hexByte(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Package zconfig holds the handful of rendering constants spec.md flags as
// "empirically chosen" rather than normative (the Code128 text-offset
// multiplier, the EAN-13 font-width constant, the default barcode height,
// and the per-font render scale table). Grounded on
// enesaygn-device-service-v3's internal/config/config.go viper usage, scaled
// down to a library-local instance rather than the global viper singleton.
package zconfig

import (
	"bytes"
	"fmt"

	"github.com/spf13/viper"
)

// Rendering holds the tunable constants consumed by internal/rasterize.
// Every field has a documented default so the module works with zero
// configuration. FontScale is loaded but not read anywhere: the renderer
// takes each font's scale from the value passed to FontSet.Add.
type Rendering struct {
	Code128TextOffset float64            `mapstructure:"code128_text_offset"`
	Ean13FontWidth    float64            `mapstructure:"ean13_font_width"`
	DefaultBarHeight  int                `mapstructure:"default_bar_height"`
	FontScale         map[string]float64 `mapstructure:"font_scale"`
}

func defaults() Rendering {
	return Rendering{
		Code128TextOffset: 0.8,
		Ean13FontWidth:    4.65,
		DefaultBarHeight:  10,
		FontScale: map[string]float64{
			"0": 1.0,
			"A": 1.0,
			";": 1.0,
		},
	}
}

// Load reads YAML config bytes and overlays them onto the documented
// defaults. A nil/empty yamlData is valid and yields the defaults
// unchanged — this module never requires a config file to function.
func Load(yamlData []byte) (Rendering, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	cfg := defaults()
	v.SetDefault("code128_text_offset", cfg.Code128TextOffset)
	v.SetDefault("ean13_font_width", cfg.Ean13FontWidth)
	v.SetDefault("default_bar_height", cfg.DefaultBarHeight)
	v.SetDefault("font_scale", cfg.FontScale)

	if len(yamlData) > 0 {
		if err := v.ReadConfig(bytes.NewReader(yamlData)); err != nil {
			return Rendering{}, fmt.Errorf("zconfig: read config: %w", err)
		}
	}

	var out Rendering
	if err := v.Unmarshal(&out); err != nil {
		return Rendering{}, fmt.Errorf("zconfig: unmarshal: %w", err)
	}
	return out, nil
}

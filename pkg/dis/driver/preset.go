package driver

import (
	"fmt"
	"strings"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
	"github.com/spf13/viper"
)

// LoadPreset reads a dialect/ABI/feature preset off disk through viper, the
// same library cmd/root.go uses for the top-level ~/.mipsdis config, and
// overlays it onto config.Default() — a preset only needs to name the
// fields it wants to override. An empty path returns config.Default().
func LoadPreset(path string) (config.Config, error) {
	cfg := config.Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("driver: reading preset %s: %w", path, err)
	}

	if s := v.GetString("dialect"); s != "" {
		d, err := parseDialect(s)
		if err != nil {
			return cfg, fmt.Errorf("driver: preset %s: %w", path, err)
		}
		cfg.Dialect = d
	}
	if s := v.GetString("abi"); s != "" {
		a, err := parseABI(s)
		if err != nil {
			return cfg, fmt.Errorf("driver: preset %s: %w", path, err)
		}
		cfg.ABI = a
	}
	if s := v.GetString("endian"); s != "" {
		e, err := parseEndian(s)
		if err != nil {
			return cfg, fmt.Errorf("driver: preset %s: %w", path, err)
		}
		cfg.Endian = e
	}
	if s := v.GetString("compiler_workaround"); s != "" {
		w, err := parseWorkaround(s)
		if err != nil {
			return cfg, fmt.Errorf("driver: preset %s: %w", path, err)
		}
		cfg.CompilerWorkaround = w
	}
	if v.IsSet("gp_value") {
		cfg.GPValue = uint32(v.GetUint("gp_value"))
		cfg.HasGPValue = true
	}
	if v.IsSet("features") {
		f := &cfg.Features
		for key, field := range map[string]*bool{
			"string_detection":        &f.StringDetection,
			"float_detection":         &f.FloatDetection,
			"jump_table_detection":    &f.JumpTableDetection,
			"pseudo_instructions":     &f.PseudoInstructions,
			"handwritten_functions":   &f.HandwrittenFunctions,
			"rodata_migration":        &f.RodataMigration,
			"section_boundary_detect": &f.SectionBoundaryDetect,
		} {
			if v.IsSet("features." + key) {
				*field = v.GetBool("features." + key)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("driver: preset %s: %w", path, err)
	}
	return cfg, nil
}

func parseDialect(s string) (isa.Dialect, error) {
	switch strings.ToLower(s) {
	case "r4300":
		return isa.DialectR4300, nil
	case "rsp":
		return isa.DialectRSP, nil
	case "gte":
		return isa.DialectGTE, nil
	case "allegrex":
		return isa.DialectALLEGREX, nil
	case "ee":
		return isa.DialectEE, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q", s)
	}
}

func parseABI(s string) (isa.ABI, error) {
	switch strings.ToLower(s) {
	case "numeric":
		return isa.ABINumeric, nil
	case "o32":
		return isa.ABIO32, nil
	case "n32":
		return isa.ABIN32, nil
	case "n64":
		return isa.ABIN64, nil
	default:
		return 0, fmt.Errorf("unknown abi %q", s)
	}
}

func parseEndian(s string) (isa.Endian, error) {
	switch strings.ToLower(s) {
	case "big":
		return isa.EndianBig, nil
	case "little":
		return isa.EndianLittle, nil
	case "middle":
		return isa.EndianMiddle, nil
	default:
		return 0, fmt.Errorf("unknown endian %q", s)
	}
}

func parseWorkaround(s string) (isa.CompilerWorkaround, error) {
	switch strings.ToLower(s) {
	case "none":
		return isa.WorkaroundNone, nil
	case "sn64":
		return isa.WorkaroundSN64, nil
	case "psyq":
		return isa.WorkaroundPSYQ, nil
	default:
		return 0, fmt.Errorf("unknown compiler workaround %q", s)
	}
}

// Package config provides the simulation configuration record and its defaults.
package config

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every simulation parameter the engine understands.
// Named fields are addressable through operator aliases; any other field is
// reachable only by its full name (see Set).
type Config struct {
	// World
	WorldAnimals int `yaml:"world_animals"`
	WorldEagles  int `yaml:"world_eagles"`
	WorldFoods   int `yaml:"world_foods"`

	// Brain and eye
	BrainNeurons int     `yaml:"brain_neurons"`
	EyeCells     int     `yaml:"eye_cells"`
	EyeFovAngle  float64 `yaml:"eye_fov_angle"` // radians, centered on heading
	EyeFovRange  float64 `yaml:"eye_fov_range"` // world units

	// Rendering and collisions
	FoodSize float64 `yaml:"food_size"`

	// Movement
	SimSpeedMin      float64 `yaml:"sim_speed_min"`
	SimSpeedMax      float64 `yaml:"sim_speed_max"`
	SimSpeedAccel    float64 `yaml:"sim_speed_accel"`
	SimRotationAccel float64 `yaml:"sim_rotation_accel"`
	SimGenerationLen int     `yaml:"sim_generation_length"` // steps per generation

	// Genetic algorithm
	GaReverse   int     `yaml:"ga_reverse"` // 1 = fitness is inverted satiation
	GaMutChance float64 `yaml:"ga_mut_chance"`
	GaMutCoeff  float64 `yaml:"ga_mut_coeff"`

	// Extra holds generic keys that matched no field. They are forwarded
	// as-is; the engine decides whether to accept them.
	Extra map[string]Value `yaml:"-"`
}

// Value is a numeric override value tagged with the parser that produced it.
type Value struct {
	Float   float64
	Integer bool
}

// Int returns an integer-tagged value.
func Int(v int64) Value { return Value{Float: float64(v), Integer: true} }

// Float returns a float-tagged value.
func Float(v float64) Value { return Value{Float: v} }

func (v Value) String() string {
	if v.Integer {
		return fmt.Sprintf("%d", int64(v.Float))
	}
	return fmt.Sprintf("%g", v.Float)
}

// Default returns the embedded default configuration.
func Default() Config {
	cfg, err := parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	// Unmarshal into same struct - only overwrites fields present in file
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Clone returns a deep copy; the Extra map is never shared.
func (c Config) Clone() Config {
	out := c
	out.Extra = nil
	if len(c.Extra) > 0 {
		out.Extra = maps.Clone(c.Extra)
	}
	return out
}

// Set assigns a value by full field name. Unknown names are stored in Extra.
func (c *Config) Set(name string, v Value) error {
	f, ok := fields[name]
	if !ok {
		if c.Extra == nil {
			c.Extra = make(map[string]Value)
		}
		c.Extra[name] = v
		return nil
	}
	if f.integer {
		if v.Float != float64(int64(v.Float)) {
			return fmt.Errorf("%s expects an integer, got %s", name, v)
		}
		*f.intPtr(c) = int(v.Float)
		return nil
	}
	*f.floatPtr(c) = v.Float
	return nil
}

// Get returns a field by full name, looking in Extra for unknown names.
func (c *Config) Get(name string) (Value, bool) {
	f, ok := fields[name]
	if !ok {
		v, ok := c.Extra[name]
		return v, ok
	}
	if f.integer {
		return Int(int64(*f.intPtr(c))), true
	}
	return Float(*f.floatPtr(c)), true
}

// Names lists all named fields in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(fields))
}

// IsField reports whether name is a named field.
func IsField(name string) bool {
	_, ok := fields[name]
	return ok
}

// WriteYAML writes the configuration to a YAML file.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

type field struct {
	integer  bool
	intPtr   func(*Config) *int
	floatPtr func(*Config) *float64
}

func intField(p func(*Config) *int) field { return field{integer: true, intPtr: p} }
func floatField(p func(*Config) *float64) field { return field{floatPtr: p} }

// fields maps yaml names to struct fields.
var fields = map[string]field{
	"world_animals":         intField(func(c *Config) *int { return &c.WorldAnimals }),
	"world_eagles":          intField(func(c *Config) *int { return &c.WorldEagles }),
	"world_foods":           intField(func(c *Config) *int { return &c.WorldFoods }),
	"brain_neurons":         intField(func(c *Config) *int { return &c.BrainNeurons }),
	"eye_cells":             intField(func(c *Config) *int { return &c.EyeCells }),
	"eye_fov_angle":         floatField(func(c *Config) *float64 { return &c.EyeFovAngle }),
	"eye_fov_range":         floatField(func(c *Config) *float64 { return &c.EyeFovRange }),
	"food_size":             floatField(func(c *Config) *float64 { return &c.FoodSize }),
	"sim_speed_min":         floatField(func(c *Config) *float64 { return &c.SimSpeedMin }),
	"sim_speed_max":         floatField(func(c *Config) *float64 { return &c.SimSpeedMax }),
	"sim_speed_accel":       floatField(func(c *Config) *float64 { return &c.SimSpeedAccel }),
	"sim_rotation_accel":    floatField(func(c *Config) *float64 { return &c.SimRotationAccel }),
	"sim_generation_length": intField(func(c *Config) *int { return &c.SimGenerationLen }),
	"ga_reverse":            intField(func(c *Config) *int { return &c.GaReverse }),
	"ga_mut_chance":         floatField(func(c *Config) *float64 { return &c.GaMutChance }),
	"ga_mut_coeff":          floatField(func(c *Config) *float64 { return &c.GaMutCoeff }),
}

// Package config loads camera tuning from YAML files and applies it to
// camera records, with optional live reload through Watcher. Zero or missing
// fields leave the camera's current value alone, so a file only needs the
// settings it wants to override.
package config

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/mcpar-land/flycam"
)

// CameraSpec is the YAML schema for camera tuning. One spec serves both
// camera kinds; FlyCamera2D ignores Sensitivity and the forward/backward and
// up/down bindings it has no use for.
type CameraSpec struct {
	Accel       float64  `yaml:"accel"`
	MaxSpeed    float64  `yaml:"max_speed"`
	Sensitivity float64  `yaml:"sensitivity"`
	Friction    float64  `yaml:"friction"`
	Keys        KeysSpec `yaml:"keys"`
}

// KeysSpec names key bindings by their ebiten key names, e.g. "W" or
// "ShiftLeft". Empty entries keep the current binding.
type KeysSpec struct {
	Forward  string `yaml:"forward"`
	Backward string `yaml:"backward"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
}

// LoadCameraSpec reads and parses a camera spec file.
func LoadCameraSpec(filename string) (CameraSpec, error) {
	var spec CameraSpec
	data, err := os.ReadFile(filename)
	if err != nil {
		return spec, fmt.Errorf("config: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// Apply copies the spec's non-zero settings onto a 3D camera.
func (s CameraSpec) Apply(c *flycam.FlyCamera) error {
	if s.Accel != 0 {
		c.Accel = float32(s.Accel)
	}
	if s.MaxSpeed != 0 {
		c.MaxSpeed = float32(s.MaxSpeed)
	}
	if s.Sensitivity != 0 {
		c.Sensitivity = float32(s.Sensitivity)
	}
	if s.Friction != 0 {
		c.Friction = float32(s.Friction)
	}

	return applyBindings([]binding{
		{s.Keys.Forward, &c.KeyForward},
		{s.Keys.Backward, &c.KeyBackward},
		{s.Keys.Left, &c.KeyLeft},
		{s.Keys.Right, &c.KeyRight},
		{s.Keys.Up, &c.KeyUp},
		{s.Keys.Down, &c.KeyDown},
	})
}

// Apply2D copies the spec's non-zero settings onto a 2D camera.
func (s CameraSpec) Apply2D(c *flycam.FlyCamera2D) error {
	if s.Accel != 0 {
		c.Accel = s.Accel
	}
	if s.MaxSpeed != 0 {
		c.MaxSpeed = s.MaxSpeed
	}
	if s.Friction != 0 {
		c.Friction = s.Friction
	}

	return applyBindings([]binding{
		{s.Keys.Left, &c.KeyLeft},
		{s.Keys.Right, &c.KeyRight},
		{s.Keys.Up, &c.KeyUp},
		{s.Keys.Down, &c.KeyDown},
	})
}

type binding struct {
	name string
	key  *ebiten.Key
}

func applyBindings(bindings []binding) error {
	for _, b := range bindings {
		if b.name == "" {
			continue
		}
		k, err := KeyByName(b.name)
		if err != nil {
			return err
		}
		*b.key = k
	}
	return nil
}

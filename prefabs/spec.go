package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/physics"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Movement    MovementSpec    `yaml:"movement"`
	Body        BodySpec        `yaml:"body"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

// MovementSpec holds the designer-tunable controller values. Zero fields fall
// back to controller.DefaultConfig.
type MovementSpec struct {
	Speed             float64  `yaml:"speed"`
	JumpForce         float64  `yaml:"jump_force"`
	FallMultiplier    float64  `yaml:"fall_multiplier"`
	LowJumpMultiplier float64  `yaml:"low_jump_multiplier"`
	GroundLayers      []string `yaml:"ground_layers"`
	RayLength         float64  `yaml:"ray_length"`
	JumpBufferTime    float64  `yaml:"jump_buffer_time"`
	RunDeadzone       float64  `yaml:"run_deadzone"`
	RiseThreshold     float64  `yaml:"rise_threshold"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load player.yaml: %w", err)
	}
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player.yaml: %w", err)
	}
	return &spec, nil
}

// ControllerConfig converts the movement block into a controller.Config.
func (m MovementSpec) ControllerConfig() (controller.Config, error) {
	cfg := controller.DefaultConfig()
	setIfPositive(&cfg.Speed, m.Speed)
	setIfPositive(&cfg.JumpForce, m.JumpForce)
	setIfPositive(&cfg.FallMultiplier, m.FallMultiplier)
	setIfPositive(&cfg.LowJumpMultiplier, m.LowJumpMultiplier)
	setIfPositive(&cfg.RayLength, m.RayLength)
	setIfPositive(&cfg.JumpBufferTime, m.JumpBufferTime)
	setIfPositive(&cfg.RunDeadzone, m.RunDeadzone)
	setIfPositive(&cfg.RiseThreshold, m.RiseThreshold)

	mask, err := physics.ParseLayers(m.GroundLayers)
	if err != nil {
		return controller.Config{}, fmt.Errorf("prefabs: ground layers: %w", err)
	}
	cfg.GroundLayer = mask
	return cfg, nil
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	data, err := Load("camera.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load camera.yaml: %w", err)
	}
	var spec CameraSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal camera.yaml: %w", err)
	}
	return &spec, nil
}

// TriggerSpec describes one kind of trigger volume placed by levels.
type TriggerSpec struct {
	Width       float64         `yaml:"width"`
	Height      float64         `yaml:"height"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

// TriggersSpec maps level glyph names (collectable, door, water) to specs.
type TriggersSpec map[string]TriggerSpec

func LoadTriggersSpec() (TriggersSpec, error) {
	return LoadSpec[TriggersSpec]("triggers.yaml")
}

type BodySpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type SpriteSpec struct {
	Color *YAMLColor `yaml:"color"`
}

// ColorOr returns the configured color or fallback when none is set.
func (s SpriteSpec) ColorOr(fallback color.Color) color.Color {
	if s.Color == nil || s.Color.Color == nil {
		return fallback
	}
	return s.Color.Color
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type AnimationSpec struct {
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

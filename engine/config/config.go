package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Values holds the runtime tunables read and written by the input and UI
// layers. A single *Values is shared by every consumer for the lifetime of
// the client.
type Values struct {
	// Joystick
	JoystickEnable bool   `toml:"joystick_enable"`
	JoystickGUID   string `toml:"joystick_guid"`
	JoystickX      int    `toml:"joystick_x"`
	JoystickY      int    `toml:"joystick_y"`

	// Dead zone in percent of full axis deflection.
	JoystickTolerance int `toml:"joystick_tolerance"`

	// Relative cursor speed reached at full deflection.
	JoystickSpeed float32 `toml:"joystick_speed"`

	// Mouse
	InpGrab        bool `toml:"inp_grab"`
	InpMouseSens   int  `toml:"inp_mousesens"`
	UIMouseSens    int  `toml:"ui_mousesens"`
	UIJoystickSens int  `toml:"ui_joystick_sens"`
}

// Default returns the stock tunables.
func Default() Values {
	return Values{
		JoystickEnable:    false,
		JoystickX:         0,
		JoystickY:         1,
		JoystickTolerance: 5,
		JoystickSpeed:     0.1,
		InpMouseSens:      100,
		UIMouseSens:       100,
		UIJoystickSens:    100,
	}
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (*Values, error) {
	v := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &v, nil
	}
	if err != nil {
		return &v, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &v); err != nil {
		return &v, fmt.Errorf("parse %s: %w", path, err)
	}
	v.clamp()
	return &v, nil
}

// Save writes settings to path.
func Save(path string, v *Values) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DeadZone returns the joystick dead zone as a fraction of full scale.
func (v *Values) DeadZone() float32 {
	return float32(v.JoystickTolerance) / 100
}

func (v *Values) clamp() {
	if v.JoystickTolerance < 0 {
		v.JoystickTolerance = 0
	}
	if v.JoystickTolerance > 99 {
		v.JoystickTolerance = 99
	}
	if v.JoystickX < 0 {
		v.JoystickX = 0
	}
	if v.JoystickY < 0 {
		v.JoystickY = 0
	}
	if v.JoystickSpeed <= 0 {
		v.JoystickSpeed = Default().JoystickSpeed
	}
}

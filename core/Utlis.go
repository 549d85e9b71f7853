package core

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultFPS = 30

type Properties struct {
	Field        Field
	FPS          int
	SensorHost   string
	SensorPort   string
	SoundEnabled bool
	KeyStep      float64
}

func (p Properties) SensorAddr() string {
	return fmt.Sprintf("%s:%s", p.SensorHost, p.SensorPort)
}

func ReadProperties(env string) (Properties, error) {
	return ReadPropertiesFrom("./", env)
}

// ReadPropertiesFrom 讀取 <path>/properties/<env>.properties
func ReadPropertiesFrom(path, env string) (Properties, error) {
	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(path)

	v.SetDefault("SCREEN_WIDTH", 800)
	v.SetDefault("SCREEN_HEIGHT", 600)
	v.SetDefault("FPS", DefaultFPS)
	v.SetDefault("SENSOR_HOST", "127.0.0.1")
	v.SetDefault("SENSOR_PORT", "4321")
	v.SetDefault("SOUND_ENABLED", false)
	v.SetDefault("KEY_STEP", 0.05)

	if err := v.ReadInConfig(); err != nil {
		return Properties{}, fmt.Errorf("read properties %q: %w", env, err)
	}

	p := Properties{
		Field: Field{
			Width:  cast.ToFloat64(v.Get("SCREEN_WIDTH")),
			Height: cast.ToFloat64(v.Get("SCREEN_HEIGHT")),
		},
		FPS:          cast.ToInt(v.Get("FPS")),
		SensorHost:   cast.ToString(v.Get("SENSOR_HOST")),
		SensorPort:   cast.ToString(v.Get("SENSOR_PORT")),
		SoundEnabled: cast.ToBool(v.Get("SOUND_ENABLED")),
		KeyStep:      cast.ToFloat64(v.Get("KEY_STEP")),
	}

	if p.Field.Width <= 0 || p.Field.Height <= 0 {
		return Properties{}, fmt.Errorf("invalid screen size %vx%v", p.Field.Width, p.Field.Height)
	}
	if p.FPS <= 0 {
		p.FPS = DefaultFPS
	}
	return p, nil
}

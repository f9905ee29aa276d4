package render

import (
	"embed"
	"fmt"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/wavepen/color"
	"github.com/oliverbestmann/wavepen/gm"
)

//go:embed shaders
var shaders embed.FS

func shaderSource(name string) string {
	source, err := shaders.ReadFile("shaders/" + name)
	if err != nil {
		panic(fmt.Errorf("read shader %q: %w", name, err))
	}

	return string(source)
}

var phaseShaderSource = shaderSource("phase.kage")

type Shader struct {
	Shader *ebiten.Shader
	Source string
}

func (s *Shader) Deallocate() {
	if s.Shader != nil {
		s.Shader.Deallocate()
	}
}

type shaderRequest struct {
	device Device
	source string
}

func (r shaderRequest) Distance(shader *Shader) (float32, bool) {
	if shader.Source != r.source {
		return 0, false
	}

	return 0, true
}

func (r shaderRequest) Prepare(**Shader) {
}

func (r shaderRequest) Create() (*Shader, error) {
	shader, err := r.device.NewShader([]byte(r.source))
	if err != nil {
		return nil, err
	}

	return &Shader{Shader: shader, Source: r.source}, nil
}

// uniformsOf takes uniform values from a struct value. It iterates over the
// exported fields of the struct and converts them into values ebiten accepts.
func uniformsOf(value any) map[string]any {
	rv := reflect.ValueOf(value)
	ty := rv.Type()

	if ty.Kind() != reflect.Struct {
		panic(fmt.Errorf("uniforms must be a struct type, got %s", ty.Kind()))
	}

	uniforms := make(map[string]any, rv.NumField())

	for idx := range rv.NumField() {
		field := ty.Field(idx)
		if field.Anonymous || !field.IsExported() {
			continue
		}

		uniforms[field.Name] = toUniformValue(rv.Field(idx).Interface())
	}

	return uniforms
}

func toUniformValue(value any) any {
	switch value := value.(type) {
	case gm.Vec:
		return [2]float32{value.X, value.Y}

	case gm.Mat:
		return [4]float32{
			value.XAxis.X, value.XAxis.Y,
			value.YAxis.X, value.YAxis.Y,
		}

	case gm.Rad:
		return float32(value)

	case color.Color:
		r, g, b, a := value.Values()
		return [4]float32{r, g, b, a}

	default:
		return value
	}
}

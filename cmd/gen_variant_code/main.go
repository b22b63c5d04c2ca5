package main

import (
	"bytes"
	"flag"
	"go/format"
	"os"
	"text/template"

	"go.uber.org/zap"
)

const headerTxt = `// Code generated by gen_variant_code. DO NOT EDIT.

package gdnative

`

const templateTxt = `
type {{ .TypeName }} struct {
{{- range .Fields }}
	{{ . }} float32
{{- end }}
}

func NewVariant{{ .TypeName }}(value {{ .TypeName }}) (Variant, error) {
	v, err := newVariantOfType(VariantType{{ .TypeName }})
	if err != nil {
		return Variant{}, err
	}
	data := (*[{{ len .Fields }}]float32)(v.data())
{{- range $i, $f := .Fields }}
	data[{{ $i }}] = value.{{ $f }}
{{- end }}
	return v, nil
}

func (v Variant) As{{ .TypeName }}() ({{ .TypeName }}, error) {
	if err := v.expectType(VariantType{{ .TypeName }}); err != nil {
		return {{ .TypeName }}{}, err
	}
	data := (*[{{ len .Fields }}]float32)(v.data())
	return {{ .TypeName }}{
{{- range $i, $f := .Fields }}
		{{ $f }}: data[{{ $i }}],
{{- end }}
	}, nil
}
`

type params struct {
	TypeName string
	Fields   []string
}

// 这些类型的数据都直接放在 godot_variant 里，不需要引擎分配内存。
var inlineTypes = []params{
	{TypeName: "Vector2", Fields: []string{"X", "Y"}},
	{TypeName: "Rect2", Fields: []string{"X", "Y", "W", "H"}},
	{TypeName: "Vector3", Fields: []string{"X", "Y", "Z"}},
	{TypeName: "Plane", Fields: []string{"NormalX", "NormalY", "NormalZ", "D"}},
	{TypeName: "Quat", Fields: []string{"X", "Y", "Z", "W"}},
	{TypeName: "Color", Fields: []string{"R", "G", "B", "A"}},
}

func generate(types []params) ([]byte, error) {
	t1, err := template.New("t1").Parse(templateTxt)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(headerTxt)
	for _, param := range types {
		err = t1.Execute(&buf, param)
		if err != nil {
			return nil, err
		}
	}
	return format.Source(buf.Bytes())
}

func main() {
	var optOutput string
	flag.StringVar(&optOutput, "o", "", "output file, stdout if empty")
	flag.Parse()

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	src, err := generate(inlineTypes)
	if err != nil {
		log.Fatal("generate", zap.Error(err))
	}

	if optOutput == "" {
		_, err = os.Stdout.Write(src)
	} else {
		err = os.WriteFile(optOutput, src, 0644)
	}
	if err != nil {
		log.Fatal("write", zap.String("output", optOutput), zap.Error(err))
	}
}

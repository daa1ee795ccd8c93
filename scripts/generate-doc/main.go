// Command generate-doc prints the Markdown reference of the frames and
// events streamed to viewers and stored in records.
package main

import (
	"os"
	"reflect"
	"strings"
	"text/template"

	"github.com/truckmayhem/truckmayhem/game/mayhem"
	"github.com/truckmayhem/truckmayhem/game/score"
)

var (
	docTemplate = `
<a name="{{.Title}}"></a>
### ` + "`" + `{{.Title}}` + "`" + `
{{ if .Fields }}
| Property name | Type | Representation in the JSON |
|---|---|---|
{{ range $value := .Fields }}| {{ $value.Name }} | ` + "`" + `{{ $value.Type }}` + "`" + ` | ` + "`" + `{{ $value.TypeInJson }}` + "`" + ` |
{{ end }}{{ end }}
`

	runtimeTypes = map[string]string{
		"unknown": "Object",
		"string":  "String",
		"bool":    "Boolean",
		"float64": "Number",
		"int":     "Number",
		"int64":   "Number",
		"Vector2": "Array of float64 (x, y)",
		"Outcome": "String",
	}
)

type DocField struct {
	Name       string
	Type       string
	TypeInJson string
}

type DocEntry struct {
	Title  string
	Fields []DocField
}

func normalizeTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Slice:
		return "array of " + normalizeTypeName(t.Elem())
	case reflect.Ptr:
		return normalizeTypeName(t.Elem())
	case reflect.Interface:
		return "unknown"
	}

	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}

func typeInJson(t reflect.Type, name string) string {
	if strings.HasPrefix(name, "array of ") {
		return "Array of " + typeInJson(t.Elem(), strings.TrimPrefix(name, "array of "))
	}

	if res, ok := runtimeTypes[name]; ok {
		return res
	}

	switch t.Kind() {
	case reflect.String:
		return "String"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "Number"
	case reflect.Bool:
		return "Boolean"
	}

	return "Object"
}

// jsonName is the property name of a field; empty for skipped fields
func jsonName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name
	}

	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func makeDocEntry(_struct interface{}) DocEntry {
	structType := reflect.TypeOf(_struct)

	entry := DocEntry{
		Title:  structType.Name(),
		Fields: make([]DocField, 0),
	}

	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)

		name := jsonName(structField)
		if name == "" {
			continue
		}

		typeName := normalizeTypeName(structField.Type)

		entry.Fields = append(entry.Fields, DocField{
			Name:       name,
			Type:       typeName,
			TypeInJson: typeInJson(structField.Type, typeName),
		})
	}

	return entry
}

func main() {
	tmpl := template.Must(template.New("").Parse(docTemplate))

	structs := []interface{}{
		mayhem.Frame{},
		mayhem.TruckFrame{},
		mayhem.FrameObject{},
		mayhem.WaterFrame{},
		mayhem.Event{},
		score.Stats{},
	}

	for _, s := range structs {
		if err := tmpl.Execute(os.Stdout, makeDocEntry(s)); err != nil {
			panic(err)
		}
	}
}

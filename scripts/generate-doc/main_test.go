package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
)

func findField(entry DocEntry, name string) (DocField, bool) {
	for _, field := range entry.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return DocField{}, false
}

func TestMakeDocEntry(t *testing.T) {
	entry := makeDocEntry(mayhem.Frame{})
	assert.Equal(t, "Frame", entry.Title)

	cases := []struct {
		name       string
		typeName   string
		typeInJson string
	}{
		{"runId", "string", "String"},
		{"tick", "int", "Number"},
		{"truck", "TruckFrame", "Object"},
		{"objects", "array of FrameObject", "Array of Object"},
		{"outcome", "Outcome", "String"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			field, ok := findField(entry, c.name)
			if assert.True(t, ok) {
				assert.Equal(t, c.typeName, field.Type)
				assert.Equal(t, c.typeInJson, field.TypeInJson)
			}
		})
	}
}

func TestOmitemptyIsStripped(t *testing.T) {
	entry := makeDocEntry(mayhem.Event{})

	field, ok := findField(entry, "landing")
	assert.True(t, ok)
	assert.Equal(t, "Landing", field.Type)

	_, ok = findField(entry, "landing,omitempty")
	assert.False(t, ok)
}

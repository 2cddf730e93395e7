package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityUnmarshal_States(t *testing.T) {
	var e Entity
	err := json.Unmarshal([]byte(`{
		"kind": "device",
		"id": "lamp-1",
		"name": "Lamp",
		"attributes": [
			{"name": "power", "string-state": "On"},
			{"name": "reachable", "boolean-state": false},
			{"name": "level", "numeric-state": 0},
			{"name": "label", "string-state": null, "numeric-state": 5}
		]
	}`), &e)
	require.NoError(t, err)

	assert.Equal(t, KindDevice, e.Kind)
	assert.Equal(t, "lamp-1", e.ID)
	require.Len(t, e.Attributes, 4)
	assert.Equal(t, "On", Extract(&e, "power").Any())
	assert.Equal(t, false, Extract(&e, "reachable").Any())
	assert.Equal(t, 0.0, Extract(&e, "level").Any())
	assert.Nil(t, e.Attributes[3].StringState)
	assert.Equal(t, 5.0, Extract(&e, "label").Any())
}

func TestEntityUnmarshal_MissingAttributes(t *testing.T) {
	var e Entity
	require.NoError(t, json.Unmarshal([]byte(`{"id": "x"}`), &e))

	assert.Nil(t, e.Attributes)
	assert.True(t, Extract(&e, "power").IsUnknown())
}

func TestEntityUnmarshal_MalformedAttributes(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		count int
	}{
		{"object instead of array", `{"attributes": {"name": "power"}}`, -1},
		{"string instead of array", `{"attributes": "nope"}`, -1},
		{"null", `{"attributes": null}`, -1},
		{"non-object entries dropped", `{"attributes": [null, 3, "x", {"name": "power"}]}`, 1},
		{"empty array", `{"attributes": []}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entity
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &e))
			if tt.count < 0 {
				assert.Nil(t, e.Attributes)
			} else {
				assert.Len(t, e.Attributes, tt.count)
			}
			assert.True(t, Extract(&e, "power").IsUnknown())
		})
	}
}

func TestAttributeUnmarshal_WrongTypesAreAbsent(t *testing.T) {
	var e Entity
	require.NoError(t, json.Unmarshal([]byte(`{"attributes": [
		{"name": "power", "string-state": 1, "boolean-state": "yes", "numeric-state": 3},
		{"name": 12, "string-state": "orphan"}
	]}`), &e))

	require.Len(t, e.Attributes, 2)
	assert.Nil(t, e.Attributes[0].StringState)
	assert.Nil(t, e.Attributes[0].BooleanState)
	assert.Equal(t, 3.0, Extract(&e, "power").Any())
	assert.Equal(t, "", e.Attributes[1].Name)
}

func TestEntityMarshal_RoundTripsStateKeys(t *testing.T) {
	e := Entity{Kind: KindGroup, ID: "g1", Attributes: []Attribute{{Name: "on", BooleanState: ptr(false)}}}

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"group","id":"g1","name":"","attributes":[{"name":"on","boolean-state":false}]}`, string(b))
}

package entity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		entity *Entity
		attr   string
		want   any
	}{
		{
			name:   "nil entity",
			entity: nil,
			attr:   "power",
			want:   Unknown,
		},
		{
			name:   "no attribute collection",
			entity: &Entity{ID: "1"},
			attr:   "power",
			want:   Unknown,
		},
		{
			name:   "empty attribute collection",
			entity: &Entity{ID: "1", Attributes: []Attribute{}},
			attr:   "power",
			want:   Unknown,
		},
		{
			name:   "name not present",
			entity: &Entity{Attributes: []Attribute{{Name: "level", NumericState: ptr(3.0)}}},
			attr:   "power",
			want:   Unknown,
		},
		{
			name:   "name match is case sensitive",
			entity: &Entity{Attributes: []Attribute{{Name: "Power", StringState: ptr("On")}}},
			attr:   "power",
			want:   Unknown,
		},
		{
			name: "string wins over boolean and numeric",
			entity: &Entity{Attributes: []Attribute{{
				Name:         "power",
				StringState:  ptr("On"),
				BooleanState: ptr(true),
				NumericState: ptr(1.0),
			}}},
			attr: "power",
			want: "On",
		},
		{
			name: "empty string falls through to false",
			entity: &Entity{Attributes: []Attribute{{
				Name:         "power",
				StringState:  ptr(""),
				BooleanState: ptr(false),
			}}},
			attr: "power",
			want: false,
		},
		{
			name: "false is returned before numeric",
			entity: &Entity{Attributes: []Attribute{{
				Name:         "reachable",
				BooleanState: ptr(false),
				NumericState: ptr(7.0),
			}}},
			attr: "reachable",
			want: false,
		},
		{
			name:   "zero numeric is returned",
			entity: &Entity{Attributes: []Attribute{{Name: "level", NumericState: ptr(0.0)}}},
			attr:   "level",
			want:   0.0,
		},
		{
			name: "empty string with zero numeric",
			entity: &Entity{Attributes: []Attribute{{
				Name:         "level",
				StringState:  ptr(""),
				NumericState: ptr(0.0),
			}}},
			attr: "level",
			want: 0.0,
		},
		{
			name:   "empty string only",
			entity: &Entity{Attributes: []Attribute{{Name: "label", StringState: ptr("")}}},
			attr:   "label",
			want:   Unknown,
		},
		{
			name:   "no states",
			entity: &Entity{Attributes: []Attribute{{Name: "power"}}},
			attr:   "power",
			want:   Unknown,
		},
		{
			name: "first match wins",
			entity: &Entity{Attributes: []Attribute{
				{Name: "power"},
				{Name: "power", StringState: ptr("On")},
			}},
			attr: "power",
			want: Unknown,
		},
		{
			name:   "empty attribute name matches unnamed entry",
			entity: &Entity{Attributes: []Attribute{{NumericState: ptr(21.5)}}},
			attr:   "",
			want:   21.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.entity, tt.attr)
			assert.Equal(t, tt.want, got.Any())
		})
	}
}

func TestExtract_DoesNotMutate(t *testing.T) {
	e := &Entity{Attributes: []Attribute{{Name: "power", StringState: ptr(""), BooleanState: ptr(true)}}}

	Extract(e, "power")

	assert.Equal(t, "", *e.Attributes[0].StringState)
	assert.True(t, *e.Attributes[0].BooleanState)
	assert.Len(t, e.Attributes, 1)
}

func TestExtract_Concurrent(t *testing.T) {
	e := &Entity{Attributes: []Attribute{{Name: "level", NumericState: ptr(42.0)}}}

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, ok := Extract(e, "level").Number()
			assert.True(t, ok)
			assert.Equal(t, 42.0, n)
		}()
	}
	wg.Wait()
}

func TestValue(t *testing.T) {
	var zero Value
	assert.True(t, zero.IsUnknown())
	assert.Equal(t, Unknown, zero.String())

	s, ok := StringValue("On").Str()
	assert.True(t, ok)
	assert.Equal(t, "On", s)

	b, ok := BoolValue(false).Bool()
	assert.True(t, ok)
	assert.False(t, b)
	assert.Equal(t, "false", BoolValue(false).String())

	_, ok = NumberValue(0).Str()
	assert.False(t, ok)
	assert.Equal(t, "21.5", NumberValue(21.5).String())
	assert.Equal(t, ValueNumber, NumberValue(0).Kind())
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Value{}, `"Unknown"`},
		{StringValue("On"), `"On"`},
		{BoolValue(false), `false`},
		{NumberValue(0), `0`},
		{NumberValue(21.5), `21.5`},
	}
	for _, tt := range tests {
		b, err := tt.v.MarshalJSON()
		assert.NoError(t, err)
		assert.JSONEq(t, tt.want, string(b))
	}
}

func TestAttributeNames(t *testing.T) {
	e := &Entity{Attributes: []Attribute{{Name: "b"}, {Name: "a"}, {Name: "b"}}}
	assert.Equal(t, []string{"b", "a"}, e.AttributeNames())

	var nilEntity *Entity
	assert.Nil(t, nilEntity.AttributeNames())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("adapter")
	assert.NoError(t, err)
	assert.Equal(t, KindAdapter, k)

	_, err = ParseKind("scene")
	assert.Error(t, err)
}

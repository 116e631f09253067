package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/optfield"
	"github.com/hupe1980/optfield/internal/testutil"
)

func TestYAMLCodec_RoundTrip(t *testing.T) {
	c := YAMLCodec[testutil.Point]{}

	f := optfield.Some(testutil.Point{X: 1, Y: 2})
	data, err := Encode[testutil.Point](c, &f)
	require.NoError(t, err)
	// yaml.v3 quotes the key y because bare y is a YAML 1.1 boolean literal.
	assert.Equal(t, "x: 1\n\"y\": 2\n", string(data))

	var back optfield.Field[testutil.Point]
	require.NoError(t, Decode[testutil.Point](c, &back, data))
	v, ok := back.Get()
	require.True(t, ok)
	assert.Equal(t, testutil.Point{X: 1, Y: 2}, v)

	n := optfield.None[testutil.Point]()
	data, err = Encode[testutil.Point](c, &n)
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(data))

	present := optfield.Some(testutil.Point{X: 3})
	require.NoError(t, Decode[testutil.Point](c, &present, data))
	assert.True(t, present.IsNone())
}

func TestYAMLCodec_EmptyDocumentIsAbsent(t *testing.T) {
	c := YAMLCodec[int]{}
	p, err := c.Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestYAMLCodec_DecodeError(t *testing.T) {
	c := YAMLCodec[testutil.Point]{}
	_, err := c.Decode([]byte("x: [unclosed"))
	assert.Error(t, err)
}

type profile struct {
	Name  string                    `yaml:"name"`
	Home  YAMLField[testutil.Point] `yaml:"home"`
	Alias YAMLField[string]         `yaml:"alias"`
}

func TestYAMLField_StructComposition(t *testing.T) {
	p := profile{Name: "bob"}
	p.Home.Set(testutil.Point{X: 7, Y: 8})

	data, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "home:")
	assert.Contains(t, string(data), "alias: null")

	var back profile
	require.NoError(t, yaml.Unmarshal(data, &back))
	v, ok := back.Home.Get()
	require.True(t, ok)
	assert.Equal(t, testutil.Point{X: 7, Y: 8}, v)
	assert.True(t, back.Alias.IsNone())
}

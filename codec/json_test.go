package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/hupe1980/optfield"
	"github.com/hupe1980/optfield/internal/testutil"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	c := JSONCodec[testutil.Point]{}

	// some(x) → x's own representation → some(x)
	f := optfield.Some(testutil.Point{X: 1, Y: 2})
	data, err := Encode[testutil.Point](c, &f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":2}`, string(data))

	var back optfield.Field[testutil.Point]
	require.NoError(t, Decode[testutil.Point](c, &back, data))
	v, ok := back.Get()
	require.True(t, ok)
	assert.Equal(t, testutil.Point{X: 1, Y: 2}, v)

	// none → null → none
	n := optfield.None[testutil.Point]()
	data, err = Encode[testutil.Point](c, &n)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	present := optfield.Some(testutil.Point{X: 9, Y: 9})
	require.NoError(t, Decode[testutil.Point](c, &present, data))
	assert.True(t, present.IsNone(), "decoding null must leave the field absent")

	// default-valued x survives: Some(zero) is not None
	z := optfield.Some(testutil.Point{})
	data, err = Encode[testutil.Point](c, &z)
	require.NoError(t, err)
	var zback optfield.Field[testutil.Point]
	require.NoError(t, Decode[testutil.Point](c, &zback, data))
	assert.True(t, zback.IsSome())
}

func TestJSONCodec_ZeroSizedValue(t *testing.T) {
	c := JSONCodec[struct{}]{}
	f := optfield.Some(struct{}{})
	data, err := Encode[struct{}](c, &f)
	require.NoError(t, err)

	var back optfield.Field[struct{}]
	require.NoError(t, Decode[struct{}](c, &back, data))
	assert.True(t, back.IsSome())
}

func TestJSONCodec_DecodeErrors(t *testing.T) {
	c := JSONCodec[testutil.Point]{}

	var f optfield.Field[testutil.Point]
	err := Decode[testutil.Point](c, &f, []byte("{not json"))
	require.Error(t, err)
	assert.True(t, f.IsNone(), "failed decode must not disturb the field")

	f.Set(testutil.Point{X: 1})
	err = Decode[testutil.Point](c, &f, []byte(`"wrong shape"`))
	require.Error(t, err)
	v, ok := f.Get()
	require.True(t, ok, "failed decode leaves previous contents intact")
	assert.Equal(t, 1, v.X)
}

func TestJSONCodec_UniformAcrossRepresentations(t *testing.T) {
	c := JSONCodec[int]{}
	reprs := map[string]optfield.Option[int]{
		"value": &optfield.Value[int]{},
		"boxed": &optfield.Boxed[int]{},
		"field": &optfield.Field[int]{},
	}
	for name, o := range reprs {
		t.Run(name, func(t *testing.T) {
			o.Set(5)
			data, err := Encode[int](c, o)
			require.NoError(t, err)
			assert.Equal(t, "5", string(data))

			require.NoError(t, Decode[int](c, o, []byte("null")))
			_, ok := o.Get()
			assert.False(t, ok)
		})
	}
}

type customer struct {
	Name    string                    `json:"name"`
	Address JSONField[testutil.Point] `json:"address"`
	Note    JSONField[testutil.Note]  `json:"note"`
}

func TestJSONField_StructComposition(t *testing.T) {
	c := customer{Name: "ada"}
	c.Address.Set(testutil.Point{X: 1, Y: 2})

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gjson.GetBytes(data, "address.x").Int())
	assert.Equal(t, gjson.Null, gjson.GetBytes(data, "note").Type)

	var back customer
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "ada", back.Name)
	v, ok := back.Address.Get()
	require.True(t, ok)
	assert.Equal(t, testutil.Point{X: 1, Y: 2}, v)
	assert.True(t, back.Note.IsNone())
}

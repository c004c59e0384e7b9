package bitfield

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/errors"
)

func renderJSON(t *testing.T, src string) string {
	t.Helper()
	doc, err := diagram.Decode([]byte(src))
	require.NoError(t, err)
	out, err := New().Render(doc)
	require.NoError(t, err)
	return string(out)
}

func TestRender_TwoByteRegister(t *testing.T) {
	out := renderJSON(t, `{
		"reg": [
			{"name": "lo", "bits": 8},
			{"name": "hi", "bits": 8}
		],
		"config": {"bits": 16}
	}`)

	assert.Contains(t, out, `class="WaveDrom"`)
	assert.Contains(t, out, `>lo</text>`)
	assert.Contains(t, out, `>hi</text>`)
	// Field boundary indexes: 0 and 7 for lo, 8 and 15 for hi.
	for _, n := range []string{">0<", ">7<", ">8<", ">15<"} {
		assert.Contains(t, out, n)
	}
}

func TestRender_Defaults(t *testing.T) {
	out := renderJSON(t, `{"reg":[{"name":"f","bits":32}]}`)

	// Default geometry: hspace 800 gives width 809, one 80-unit lane
	// plus the 5-unit margin.
	assert.Contains(t, out, `width="809"`)
	assert.Contains(t, out, `height="85"`)
	assert.Contains(t, out, `font-size="14"`)
	assert.Contains(t, out, `font-family="sans-serif"`)
}

func TestRender_UnnamedFieldGetsBlank(t *testing.T) {
	out := renderJSON(t, `{"reg":[{"bits":4},{"name":"f","bits":28}]}`)

	assert.Contains(t, out, `style="fill-opacity:0.1"`)
}

func TestRender_TypedFieldColor(t *testing.T) {
	out := renderJSON(t, `{"reg":[{"name":"f","bits":32,"type":4}]}`)

	assert.Contains(t, out, `fill-opacity:0.1;fill:#00FFD5`)
}

func TestRender_IntAttrBinaryDigits(t *testing.T) {
	out := renderJSON(t, `{"reg":[{"name":"op","bits":4,"attr":5}],"config":{"bits":8}}`)

	// Attribute value 5 over four bits renders 0101.
	assert.Equal(t, 2, strings.Count(out, ">1</text>"))
	assert.Contains(t, out, ">0</text>")
}

func TestRender_MultiAttrExtraSpace(t *testing.T) {
	out := renderJSON(t, `{"reg":[{"name":"f","bits":32,"attr":["a","b","c"]}]}`)

	// Two extra attribute rows add 32 units to the lane height.
	assert.Contains(t, out, `height="117"`)
}

func TestRender_MultilineFieldName(t *testing.T) {
	out := renderJSON(t, `{"reg":[{"name":"hello\nworld","bits":8}],"config":{"bits":8}}`)

	// Lines stack vertically at fontsize steps around the field center.
	assert.Contains(t, out, `<text x="350" y="-7">hello</text>`)
	assert.Contains(t, out, `<text x="350" y="7">world</text>`)
	assert.NotContains(t, out, "hello\nworld")
}

func TestRender_Lanes(t *testing.T) {
	out := renderJSON(t, `{"reg":[{"name":"f","bits":32}],"config":{"lanes":2}}`)

	// Two lanes stack bottom-up by default.
	assert.Contains(t, out, `translate(4.5,80.5)`)
	assert.Contains(t, out, `translate(4.5,0.5)`)
}

func TestRender_NoReg(t *testing.T) {
	doc, err := diagram.Decode([]byte(`{"signal":[{"name":"a","wave":"01"}]}`))
	require.NoError(t, err)
	_, err = New().Render(doc)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestResolveOptions_Clamps(t *testing.T) {
	o := resolveOptions(diagram.Config{VSpace: 10, HSpace: 20, Lanes: -1, Bits: 2, FontSize: 3})

	assert.Equal(t, 80.0, o.vspace)
	assert.Equal(t, 800.0, o.hspace)
	assert.Equal(t, 1, o.lanes)
	assert.Equal(t, 32, o.bits)
	assert.Equal(t, 14.0, o.fontsize)
}

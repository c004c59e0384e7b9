package timing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/errors"
)

func renderJSON(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	doc, err := diagram.Decode([]byte(src))
	require.NoError(t, err)
	out, err := New(opts...).Render(doc)
	require.NoError(t, err)
	return string(out)
}

func TestRender_SingleClockLane(t *testing.T) {
	out := renderJSON(t, `{"signal":[{"name":"clk","wave":"p"}]}`)

	assert.Contains(t, out, `id="svgcontent_0"`)
	assert.Contains(t, out, `class="WaveDrom"`)
	assert.Contains(t, out, `id="wavelane_0_0"`)
	assert.Contains(t, out, `<tspan>clk</tspan>`)
	// A clock symbol expands to a rising brick and its inverse.
	assert.Contains(t, out, `<use xlink:href="#pclk"/>`)
	assert.Contains(t, out, `<use xlink:href="#nclk" transform="translate(20)"/>`)
}

func TestRender_BrickCountPerSlot(t *testing.T) {
	out := renderJSON(t, `{"signal":[{"name":"clk","wave":"P......"}]}`)

	// Seven slots of a sharp clock produce two bricks each.
	assert.Equal(t, 14, strings.Count(out, `<use xlink:href="#`))
}

func TestRender_NoSignal(t *testing.T) {
	doc, err := diagram.Decode([]byte(`{"reg":[{"name":"a","bits":8}]}`))
	require.NoError(t, err)
	_, err = New().Render(doc)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestRender_DataLabels(t *testing.T) {
	out := renderJSON(t, `{"signal":[{"name":"bus","wave":"x=x","data":["head"]}]}`)

	assert.Contains(t, out, `<tspan>head</tspan>`)
	assert.Contains(t, out, `xlink:href="#vvv-2"`)
}

func TestRender_ArcsAndEdgeLabel(t *testing.T) {
	out := renderJSON(t, `{
		"signal": [
			{"name": "a", "wave": "01.0", "node": ".2.."},
			{"name": "b", "wave": "0.10", "node": "..3."}
		],
		"edge": ["2-3 hello"]
	}`)

	assert.Contains(t, out, `id="gmark_2_3"`)
	assert.Contains(t, out, `<tspan>hello</tspan>`)
	// Digit events get their own boxed labels.
	assert.Contains(t, out, `<tspan>2</tspan>`)
	assert.Contains(t, out, `<tspan>3</tspan>`)
}

func TestRender_UnresolvedEdgeEvent(t *testing.T) {
	doc, err := diagram.Decode([]byte(`{
		"signal": [{"name": "a", "wave": "01", "node": ".2"}],
		"edge": ["2->9"]
	}`))
	require.NoError(t, err)
	_, err = New().Render(doc)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnresolvedEvent, errors.GetCode(err))
}

func TestRender_GroupBrace(t *testing.T) {
	out := renderJSON(t, `{"signal":[["ctrl",{"name":"a","wave":"01"},{"name":"b","wave":"10"}]]}`)

	assert.Contains(t, out, `id="group_0_0"`)
	assert.Contains(t, out, `rotate(270)`)
	assert.Contains(t, out, `<tspan>ctrl</tspan>`)
}

func TestRender_HeadFootReserveSpace(t *testing.T) {
	out := renderJSON(t, `{
		"signal": [{"name": "a", "wave": "01"}],
		"head": {"text": "title", "tick": 0}
	}`)

	// One lane is 30 units; tick row adds 20 and the title adds 46.
	assert.Contains(t, out, `height="96"`)
	assert.Contains(t, out, `<tspan>title</tspan>`)
	assert.Contains(t, out, `class="muted"`)
}

func TestRender_StrictOmitsInlineLabels(t *testing.T) {
	src := `{"signal":[{"name":"a","wave":"01","label":".z"}]}`

	loose := renderJSON(t, src)
	strict := renderJSON(t, src, WithStrictCompat())

	assert.Contains(t, loose, `id="labels_0"`)
	assert.NotContains(t, strict, `id="labels_0"`)
}

func TestRender_UnknownSkin(t *testing.T) {
	doc, err := diagram.Decode([]byte(`{"signal":[{"name":"a","wave":"01"}],"config":{"skin":"nope"}}`))
	require.NoError(t, err)
	_, err = New().Render(doc)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidSkin, errors.GetCode(err))
}

func TestRender_GapSquiggle(t *testing.T) {
	out := renderJSON(t, `{"signal":[{"name":"a","wave":"0|1"}]}`)

	assert.Contains(t, out, `xlink:href="#gap"`)
}

func TestRender_GapAfterMultibyteSymbol(t *testing.T) {
	// 'é' is one symbol, so the gap after "0é" sits on the third slot
	// center. Counting UTF-8 bytes instead would push it one slot right.
	out := renderJSON(t, `{"signal":[{"name":"a","wave":"0é|1"}]}`)

	assert.Contains(t, out, `xlink:href="#gap" transform="translate(100)"`)
	assert.NotContains(t, out, `xlink:href="#gap" transform="translate(140)"`)
}

func TestRender_HScaleRoundsHalfToEven(t *testing.T) {
	// hscale 2.5 resolves to 2: one filler after each brick, so two
	// slots of "01" draw 8 bricks rather than 12.
	out := renderJSON(t, `{"signal":[{"name":"a","wave":"01"}],"config":{"hscale":2.5}}`)

	assert.Equal(t, 8, strings.Count(out, `<use xlink:href="#`))
}

func TestFlattenSignals(t *testing.T) {
	lane := func(name string) *diagram.SignalNode {
		return &diagram.SignalNode{Lane: &diagram.Lane{Name: name, Period: 1}}
	}
	root := &diagram.SignalNode{Children: []*diagram.SignalNode{
		lane("a"),
		{Name: "grp", Named: true, Children: []*diagram.SignalNode{lane("b"), lane("c")}},
		lane("d"),
	}}

	f := flattenSignals(root)

	require.Len(t, f.lanes, 4)
	assert.Equal(t, []float64{10, 35, 35, 10}, f.widths)
	require.Len(t, f.groups, 1)
	assert.Equal(t, groupSpan{x: 35, y: 1, height: 2, name: "grp", named: true}, f.groups[0])
}

func TestFindLaneMarkers(t *testing.T) {
	tests := []struct {
		name   string
		shapes []string
		want   []float64
	}{
		{"none", []string{"000", "111"}, nil},
		{"single run", []string{"0m2", "vvv-2", "vvv-2", "vvv-2", "000"}, []float64{2}},
		{"run at end", []string{"000", "vvv-3", "vvv-3"}, []float64{1.5}},
		{"two runs", []string{"vvv-2", "vvv-2", "000", "vvv-4"}, []float64{0.5, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findLaneMarkers(tt.shapes))
		})
	}
}

func TestTextWidth(t *testing.T) {
	assert.Zero(t, textWidth("", 11))
	assert.InDelta(t, 3.3, textWidth("i", 11), 0.01)
	assert.Greater(t, textWidth("wide", 11), textWidth("i", 11))
}

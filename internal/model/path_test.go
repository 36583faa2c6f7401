package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Path
		wantErr bool
	}{
		{in: "", want: Path{}},
		{in: "/", want: Path{}},
		{in: "0", want: Path{0}},
		{in: "0/2/1", want: Path{0, 2, 1}},
		{in: "/0/2/", want: Path{0, 2}},
		{in: "0.2.1", want: Path{0, 2, 1}},
		{in: "[0,2,1]", want: Path{0, 2, 1}},
		{in: "[]", want: Path{}},
		{in: "0/x", wantErr: true},
		{in: "0/-1", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePath(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestPath_StringRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", Path{}.String())
	assert.Equal(t, "0/3/1", Path{0, 3, 1}.String())

	got, err := ParsePath(Path{4, 0, 7}.String())
	require.NoError(t, err)
	assert.Equal(t, Path{4, 0, 7}, got)
}

func TestPath_Helpers(t *testing.T) {
	t.Parallel()

	p := Path{1, 2, 3}
	assert.Equal(t, Path{1, 2}, p.Parent())
	assert.Equal(t, Path{}, Path{}.Parent())
	assert.Equal(t, 3, p.Last())
	assert.Equal(t, -1, Path{}.Last())

	q := p.Append(9)
	assert.Equal(t, Path{1, 2, 3, 9}, q)
	assert.Equal(t, Path{1, 2, 3}, p, "Append must not alias the receiver")

	assert.True(t, p.HasPrefix(Path{}))
	assert.True(t, p.HasPrefix(Path{1, 2}))
	assert.True(t, p.HasPrefix(p))
	assert.False(t, p.HasPrefix(Path{1, 3}))
	assert.False(t, Path{1}.HasPrefix(Path{1, 2}))

	c := p.Clone()
	c[0] = 42
	assert.Equal(t, 1, p[0])
}

func TestDragPayload_RoundTrip(t *testing.T) {
	t.Parallel()

	s := EncodeDragPayload(Path{0, 2})
	assert.JSONEq(t, `{"path":[0,2]}`, s)

	p, err := DecodeDragPayload(s)
	require.NoError(t, err)
	assert.Equal(t, Path{0, 2}, p)

	_, err = DecodeDragPayload(`{"path":[]}`)
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = DecodeDragPayload(`not json`)
	assert.Error(t, err)

	_, err = DecodeDragPayload(`{"path":[1,-2]}`)
	assert.Error(t, err)
}

func TestNode_MarshalJSON_DocumentShape(t *testing.T) {
	t.Parallel()

	tree := Tree{
		{ID: "1", Type: KindFolder, Name: "Work"},
		{ID: "2", Type: KindClip, Name: "Sig"},
	}
	b, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":"1","type":"folder","name":"Work","children":[]},
		{"id":"2","type":"clip","name":"Sig","description":""}
	]`, string(b))

	var back Tree
	require.NoError(t, json.Unmarshal(b, &back))
	back.Normalize()
	assert.Equal(t, "Work", back[0].Name)
	assert.NotNil(t, back[0].Children)
	assert.Equal(t, ColorWhite, back[0].EffectiveColor())
}

func TestTree_Normalize(t *testing.T) {
	t.Parallel()

	var tree Tree
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"1","type":"folder","name":"A"},
		null,
		{"id":"2","type":"clip","name":"B","children":[{"id":"3","type":"clip","name":"C"}]}
	]`), &tree))
	tree.Normalize()

	require.Len(t, tree, 2)
	assert.NotNil(t, tree[0].Children)
	assert.Nil(t, tree[1].Children)
	assert.Equal(t, 2, tree.CountNodes())
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, ok := ParseColor(" Violet ")
	assert.True(t, ok)
	assert.Equal(t, ColorViolet, c)

	_, ok = ParseColor("blue")
	assert.False(t, ok)
}

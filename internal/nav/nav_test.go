package nav

import (
	"testing"

	"shiftclip/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abTree() model.Tree {
	return model.Tree{
		{Type: model.KindFolder, Name: "A", Children: []*model.Node{
			{Type: model.KindClip, Name: "B", Description: "bee"},
		}},
	}
}

func TestFolderThenClipSelection(t *testing.T) {
	tree := abTree()
	sel := model.Path{0, 0}

	assert.Equal(t, 1, ActiveDepth(tree, sel))
	assert.Equal(t, []Crumb{
		{Label: "Home", Path: model.Path{}},
		{Label: "A", Path: model.Path{0}},
	}, Breadcrumbs(tree, sel))

	v := Columns(tree, sel)
	require.Len(t, v.Columns, 2)
	assert.Equal(t, 0, v.Columns[0].Depth)
	assert.False(t, v.Columns[0].Active)
	assert.Equal(t, 0, v.Columns[0].Selected)
	assert.Equal(t, 1, v.Columns[1].Depth)
	assert.True(t, v.Columns[1].Active)
	assert.Equal(t, model.Path{0}, v.Columns[1].Path)
	require.NotNil(t, v.Preview)
	assert.Equal(t, "B", v.Preview.Name)
	assert.Equal(t, model.Path{0, 0}, v.PreviewPath)
}

func TestBreadcrumbs_HomeAndFolder(t *testing.T) {
	crumbs := Breadcrumbs(abTree(), model.Path{0})
	assert.Equal(t, []Crumb{
		{Label: "Home", Path: model.Path{}},
		{Label: "A", Path: model.Path{0}},
	}, crumbs)
}

func TestBreadcrumbs_StopsAtDanglingPrefix(t *testing.T) {
	crumbs := Breadcrumbs(abTree(), model.Path{0, 5, 1})
	require.Len(t, crumbs, 2)
	assert.Equal(t, "A", crumbs[1].Label)

	crumbs = Breadcrumbs(abTree(), model.Path{3})
	assert.Equal(t, []Crumb{{Label: "Home", Path: model.Path{}}}, crumbs)
}

func TestBreadcrumbs_TruncatesLongNames(t *testing.T) {
	tree := model.Tree{{Type: model.KindFolder, Name: "Customer replies", Children: []*model.Node{}}}
	crumbs := Breadcrumbs(tree, model.Path{0})
	assert.Equal(t, "Customer r...", crumbs[1].Label)

	assert.Equal(t, "exactly10!", TruncateLabel("exactly10!", 10))
	assert.Equal(t, "ñññññññññ ...", TruncateLabel("ñññññññññ ñ", 10))
}

func TestActiveDepth(t *testing.T) {
	tree := model.Tree{
		{Type: model.KindFolder, Name: "A", Children: []*model.Node{
			{Type: model.KindFolder, Name: "B", Children: []*model.Node{}},
		}},
		{Type: model.KindClip, Name: "c"},
	}
	cases := []struct {
		sel  model.Path
		want int
	}{
		{sel: model.Path{}, want: 0},
		{sel: model.Path{0}, want: 1},
		{sel: model.Path{0, 0}, want: 2},
		{sel: model.Path{0, 0, 4}, want: 2},
		{sel: model.Path{1}, want: 0},
		{sel: model.Path{9, 0}, want: 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ActiveDepth(tree, tc.sel), "sel %s", tc.sel)
	}
}

func TestColumns_EmptySelection(t *testing.T) {
	v := Columns(abTree(), model.Path{})
	require.Len(t, v.Columns, 1)
	assert.True(t, v.Columns[0].Active)
	assert.Equal(t, -1, v.Columns[0].Selected)
	assert.Nil(t, v.Preview)
}

func TestColumns_OpenFolderIsActive(t *testing.T) {
	v := Columns(abTree(), model.Path{0})
	require.Len(t, v.Columns, 2)
	assert.False(t, v.Columns[0].Active)
	assert.True(t, v.Columns[1].Active)
	assert.Equal(t, -1, v.Columns[1].Selected)
	assert.Nil(t, v.Preview)
}

func TestColumns_StaleIndexStops(t *testing.T) {
	v := Columns(abTree(), model.Path{7, 1})
	require.Len(t, v.Columns, 1)
	assert.Equal(t, 7, v.Columns[0].Selected)
	assert.True(t, v.Columns[0].Active)
}

func TestSelectAtAndTruncate(t *testing.T) {
	sel := model.Path{0, 2, 1}
	assert.Equal(t, model.Path{0, 5}, SelectAt(sel, 1, 5))
	assert.Equal(t, model.Path{0, 2, 1, 3}, SelectAt(sel, 3, 3))
	assert.Equal(t, model.Path{4}, SelectAt(sel, 0, 4))
	assert.Equal(t, model.Path{0, 2, 1}, sel)

	assert.Equal(t, model.Path{0}, Truncate(sel, 1))
	assert.Equal(t, model.Path{}, Truncate(sel, 0))
	assert.Equal(t, sel, Truncate(sel, 10))
}

func TestItemCount(t *testing.T) {
	tree := abTree()
	assert.Equal(t, 1, ItemCount(tree, model.Path{}))
	assert.Equal(t, 1, ItemCount(tree, model.Path{0}))
	assert.Equal(t, 1, ItemCount(tree, model.Path{0, 0}))

	assert.Equal(t, "0 items", ItemCountLabel(0))
	assert.Equal(t, "1 item", ItemCountLabel(1))
	assert.Equal(t, "3 items", ItemCountLabel(3))
}

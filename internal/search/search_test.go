package search

import (
	"testing"

	"shiftclip/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() model.Tree {
	return model.Tree{
		{Type: model.KindFolder, Name: "Replies", Children: []*model.Node{
			{Type: model.KindClip, Name: "Thanks", Description: "Thank you so much"},
			{Type: model.KindClip, Name: "Greeting", Description: "Hello world"},
			{Type: model.KindFolder, Name: "Hello folder", Children: []*model.Node{
				{Type: model.KindClip, Name: "Nested", Description: "say HELLO"},
			}},
		}},
		{Type: model.KindClip, Name: "hello top", Description: ""},
	}
}

func paths(ms []Match) []model.Path {
	out := make([]model.Path, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Path)
	}
	return out
}

func TestSearch_FindsGreetingByDescription(t *testing.T) {
	got := Search(testTree(), "hello")
	assert.Contains(t, paths(got), model.Path{0, 1})
	assert.Empty(t, Search(testTree(), "zzz"))
}

func TestSearch_PreOrderAndCaseInsensitive(t *testing.T) {
	got := Search(testTree(), "  HeLLo ")
	assert.Equal(t, []model.Path{{0, 1}, {0, 2}, {0, 2, 0}, {1}}, paths(got))
	require.Len(t, got, 4)
	assert.Equal(t, "Greeting", got[0].Node.Name)
}

func TestSearch_FolderDescriptionIgnored(t *testing.T) {
	tree := model.Tree{{Type: model.KindFolder, Name: "Box", Description: "needle", Children: []*model.Node{}}}
	assert.Empty(t, Search(tree, "needle"))
}

func TestSearch_BlankQuery(t *testing.T) {
	assert.Nil(t, Search(testTree(), ""))
	assert.Nil(t, Search(testTree(), "   "))
}

func TestTop(t *testing.T) {
	all := Search(testTree(), "e")
	require.Greater(t, len(all), 2)
	assert.Len(t, Top(all, 2), 2)
	assert.Len(t, Top(all, 0), len(all))
	assert.Len(t, Top(all, 100), len(all))
}

package xmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWellFormed(t *testing.T) {
	doc, perr := Parse(`<Window xmlns="https://github.com/avaloniaui" xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml">
  <Grid>
    <TextBlock Text="hello"/>
  </Grid>
</Window>`)
	require.Nil(t, perr)

	assert.Equal(t, "Window", doc.Root().Name())
	assert.Equal(t, "https://github.com/avaloniaui", doc.DefaultNamespace())

	ns, ok := doc.Namespace("x")
	require.True(t, ok)
	assert.Equal(t, "http://schemas.microsoft.com/winfx/2006/xaml", ns)

	assert.Len(t, doc.Elements(), 3)
	assert.Len(t, doc.ElementsNamed("TextBlock"), 1)
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		doc, perr := Parse(raw)
		require.NotNil(t, perr)
		assert.Nil(t, doc)
		assert.Equal(t, "document is empty", perr.Message)
	}
}

func TestParseMalformed(t *testing.T) {
	doc, perr := Parse("<Window><Grid></Window>")
	require.NotNil(t, perr)
	assert.Nil(t, doc)
	assert.NotEmpty(t, perr.Message)
}

func TestElementDepthAndParent(t *testing.T) {
	doc, perr := Parse(`<A><B><C/></B></A>`)
	require.Nil(t, perr)

	els := doc.Elements()
	require.Len(t, els, 3)
	assert.Equal(t, 0, els[0].Depth())
	assert.Equal(t, 1, els[1].Depth())
	assert.Equal(t, 2, els[2].Depth())
	assert.Nil(t, els[0].Parent())
	assert.Equal(t, "B", els[2].Parent().Name())
}

func TestPrefixedAttrLookup(t *testing.T) {
	doc, perr := Parse(`<Window xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml" x:Class="App.MainWindow" Title="t"/>`)
	require.Nil(t, perr)

	v, ok := doc.Root().Attr("x:Class")
	require.True(t, ok)
	assert.Equal(t, "App.MainWindow", v)

	_, ok = doc.Root().Attr("Class")
	assert.False(t, ok)
	assert.True(t, doc.Root().HasAttr("Title"))
}

func TestDescendants(t *testing.T) {
	doc, perr := Parse(`<A><B><C/><D/></B><E/></A>`)
	require.Nil(t, perr)

	names := []string{}
	for _, d := range doc.Root().Descendants() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"B", "C", "D", "E"}, names)
}

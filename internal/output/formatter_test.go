package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatMarkdown, ParseFormat("md"))
	assert.Equal(t, FormatMarkdown, ParseFormat("markdown"))
	assert.Equal(t, FormatTOON, ParseFormat("toon"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("anything"))
}

func TestFormatterJSONOutput(t *testing.T) {
	f, err := NewFormatter(FormatJSON, "", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	f.writer = &buf

	require.NoError(t, f.Output(map[string]int{"score": 90}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 90, decoded["score"])
}

func TestFormatterFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	f, err := NewFormatter(FormatJSON, path, true)
	require.NoError(t, err)
	assert.False(t, f.Colored(), "file output disables color")

	require.NoError(t, f.Output(map[string]string{"k": "v"}))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"k": "v"`)
}

func TestTableRenderMarkdown(t *testing.T) {
	table := NewTable("Results", []string{"File", "Score"}, [][]string{
		{"a.axaml", "100"},
		{"b.axaml", "70"},
	}, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, table.RenderMarkdown(&buf))

	out := buf.String()
	assert.Contains(t, out, "## Results")
	assert.Contains(t, out, "| File | Score |")
	assert.Contains(t, out, "| a.axaml | 100 |")
}

func TestTableRenderData(t *testing.T) {
	table := NewTable("", []string{"File", "Score"}, [][]string{{"a.axaml", "100"}}, nil, nil)

	data, ok := table.RenderData().([]map[string]string)
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, "a.axaml", data[0]["File"])
}

func TestSectionRenderText(t *testing.T) {
	s := &Section{
		Title:   "Summary",
		Content: "2 files checked",
		Sections: []Section{
			{Title: "Detail", Content: "all passed"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, s.RenderText(&buf, false))

	out := buf.String()
	assert.Contains(t, out, "Summary\n=======")
	assert.Contains(t, out, "Detail\n------")
}

func TestTOONOutput(t *testing.T) {
	f, err := NewFormatter(FormatTOON, "", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	f.writer = &buf

	require.NoError(t, f.Output(map[string]any{"passed": true}))
	assert.Contains(t, buf.String(), "passed")
}

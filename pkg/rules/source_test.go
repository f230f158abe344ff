package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xamlint/xamlint/pkg/models"
)

func evalSource(r SourceRule, src string) []models.Finding {
	return r.EvaluateLines(strings.Split(src, "\n"), models.DefaultOptions())
}

func TestAsyncVoidRule(t *testing.T) {
	t.Run("async void method warns", func(t *testing.T) {
		findings := evalSource(asyncVoidRule{}, `public class Vm
{
    public async void LoadData()
    {
    }
}`)
		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityWarning, findings[0].Severity)
		assert.Equal(t, 3, findings[0].Line)
	})

	t.Run("event handler signature is allowed", func(t *testing.T) {
		findings := evalSource(asyncVoidRule{},
			`private async void OnClick(object sender, RoutedEventArgs e)`)
		assert.Empty(t, findings)
	})
}

func TestBlockingTaskRule(t *testing.T) {
	findings := evalSource(blockingTaskRule{}, `var a = FetchAsync().Result;
FetchAsync().Wait();
var b = FetchAsync().GetAwaiter().GetResult();
// FetchAsync().Wait() in a comment
await FetchAsync();`)
	require.Len(t, findings, 3)
	for i, f := range findings {
		assert.Equal(t, models.SeverityWarning, f.Severity)
		assert.Equal(t, i+1, f.Line)
	}
}

func TestSyncIORule(t *testing.T) {
	findings := evalSource(syncIORule{}, `var text = File.ReadAllText(path);
var textAsync = await File.ReadAllTextAsync(path);
File.WriteAllBytes(path, data);`)
	require.Len(t, findings, 2)
	assert.Equal(t, 1, findings[0].Line)
	assert.Equal(t, 3, findings[1].Line)
	for _, f := range findings {
		assert.Equal(t, models.SeverityInfo, f.Severity)
	}
}

func TestStringConcatLoopRule(t *testing.T) {
	t.Run("concat inside loop flagged", func(t *testing.T) {
		findings := evalSource(stringConcatLoopRule{}, `var s = "";
foreach (var item in items)
{
    s += item.ToString();
}`)
		require.Len(t, findings, 1)
		assert.Equal(t, 4, findings[0].Line)
	})

	t.Run("concat outside loop ignored", func(t *testing.T) {
		findings := evalSource(stringConcatLoopRule{}, `var s = "";
s += "suffix";`)
		assert.Empty(t, findings)
	})

	t.Run("inline braced body flags its own line only", func(t *testing.T) {
		findings := evalSource(stringConcatLoopRule{}, `foreach (var p in parts) { total += p.ToString(); }
label += "done";`)
		require.Len(t, findings, 1)
		assert.Equal(t, 1, findings[0].Line)
	})

	t.Run("single-statement body ends after one line", func(t *testing.T) {
		findings := evalSource(stringConcatLoopRule{}, `foreach (var p in parts)
    total += p.ToString();
label += "done";`)
		require.Len(t, findings, 1)
		assert.Equal(t, 2, findings[0].Line)
	})

	t.Run("numeric accumulation ignored", func(t *testing.T) {
		findings := evalSource(stringConcatLoopRule{}, `var total = 0;
for (var i = 0; i < n; i++)
{
    total += weights[i];
}`)
		assert.Empty(t, findings)
	})
}

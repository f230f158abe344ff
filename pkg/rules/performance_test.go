package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xamlint/xamlint/pkg/models"
)

func TestNestingDepthRule(t *testing.T) {
	opts := models.DefaultOptions()
	opts.Thresholds.MaxNestingDepth = 3

	deep := `<Window><Grid><StackPanel><Border><StackPanel><Button/></StackPanel></Border></StackPanel></Grid></Window>`
	findings := nestingDepthRule{}.Evaluate(parseDoc(t, deep), opts)
	require.Len(t, findings, 1)
	assert.Equal(t, models.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "StackPanel")

	shallow := `<Window><Grid><StackPanel><Button/></StackPanel></Grid></Window>`
	assert.Empty(t, nestingDepthRule{}.Evaluate(parseDoc(t, shallow), opts))
}

func TestVirtualizationRule(t *testing.T) {
	t.Run("bound list without virtualization warns", func(t *testing.T) {
		findings := evalRule(t, virtualizationRule{},
			`<Window><ListBox ItemsSource="{Binding Items}"/></Window>`)
		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityWarning, findings[0].Severity)
	})

	t.Run("virtualizing items panel is a positive finding", func(t *testing.T) {
		findings := evalRule(t, virtualizationRule{}, `<Window>
  <ListBox ItemsSource="{Binding Items}">
    <ListBox.ItemsPanel>
      <ItemsPanelTemplate><VirtualizingStackPanel/></ItemsPanelTemplate>
    </ListBox.ItemsPanel>
  </ListBox>
</Window>`)
		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityInfo, findings[0].Severity)
	})

	t.Run("unbound list is ignored", func(t *testing.T) {
		findings := evalRule(t, virtualizationRule{}, `<Window><ListBox/></Window>`)
		assert.Empty(t, findings)
	})
}

func TestInlineStyleRule(t *testing.T) {
	opts := models.DefaultOptions()
	opts.Thresholds.MaxInlineStyled = 2

	var b strings.Builder
	b.WriteString("<Window>")
	for i := 0; i < 3; i++ {
		b.WriteString(`<Button Background="Red" Foreground="White" FontSize="14"/>`)
	}
	b.WriteString("</Window>")

	findings := inlineStyleRule{}.Evaluate(parseDoc(t, b.String()), opts)
	require.Len(t, findings, 1)
	assert.Equal(t, models.SeverityWarning, findings[0].Severity)

	findings = inlineStyleRule{}.Evaluate(parseDoc(t, `<Window><Button Background="Red"/></Window>`), opts)
	assert.Empty(t, findings)
}

func TestPanelChildrenRule(t *testing.T) {
	opts := models.DefaultOptions()
	opts.Thresholds.MaxPanelChildren = 3

	var b strings.Builder
	b.WriteString("<Window><StackPanel>")
	for i := 0; i < 4; i++ {
		b.WriteString("<Button/>")
	}
	b.WriteString("</StackPanel></Window>")

	findings := panelChildrenRule{}.Evaluate(parseDoc(t, b.String()), opts)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "4 direct children")
}

func TestCompiledBindingsRule(t *testing.T) {
	t.Run("runtime bindings suggest compilation", func(t *testing.T) {
		findings := evalRule(t, compiledBindingsRule{},
			`<Window><TextBlock Text="{Binding Title}"/></Window>`)
		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityInfo, findings[0].Severity)
		assert.NotEmpty(t, findings[0].Suggestion)
	})

	t.Run("enabled compiled bindings are confirmed", func(t *testing.T) {
		findings := evalRule(t, compiledBindingsRule{},
			`<Window x:CompileBindings="True"><TextBlock Text="{Binding Title}"/></Window>`)
		require.Len(t, findings, 1)
		assert.Empty(t, findings[0].Suggestion)
	})

	t.Run("no bindings is silent", func(t *testing.T) {
		findings := evalRule(t, compiledBindingsRule{}, `<Window><TextBlock Text="static"/></Window>`)
		assert.Empty(t, findings)
	})
}

func TestImageDecodeRule(t *testing.T) {
	t.Run("unsized image is flagged", func(t *testing.T) {
		findings := evalRule(t, imageDecodeRule{},
			`<Window><Image Source="/Assets/photo.png"/></Window>`)
		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityInfo, findings[0].Severity)
		assert.NotEmpty(t, findings[0].Suggestion)
	})

	t.Run("sized image is fine", func(t *testing.T) {
		findings := evalRule(t, imageDecodeRule{},
			`<Window><Image Source="/Assets/photo.png" Width="64" Height="64"/></Window>`)
		assert.Empty(t, findings)
	})

	t.Run("image without source is ignored", func(t *testing.T) {
		findings := evalRule(t, imageDecodeRule{}, `<Window><Image/></Window>`)
		assert.Empty(t, findings)
	})
}

func TestResourceSizeRule(t *testing.T) {
	opts := models.DefaultOptions()
	opts.Thresholds.MaxResourceEntries = 2

	findings := resourceSizeRule{}.Evaluate(parseDoc(t, `<Window>
  <Window.Resources>
    <SolidColorBrush x:Key="a"/>
    <SolidColorBrush x:Key="b"/>
    <SolidColorBrush x:Key="c"/>
  </Window.Resources>
</Window>`), opts)
	require.Len(t, findings, 1)
	assert.Equal(t, models.SeverityInfo, findings[0].Severity)
}

func TestElementCountRule(t *testing.T) {
	opts := models.DefaultOptions()
	opts.Thresholds.MaxElements = 3

	findings := elementCountRule{}.Evaluate(parseDoc(t,
		`<Window><Grid><Button/><Button/></Grid></Window>`), opts)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "4 elements")

	findings = elementCountRule{}.Evaluate(parseDoc(t, `<Window><Button/></Window>`), opts)
	assert.Empty(t, findings)
}

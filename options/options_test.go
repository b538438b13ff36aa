package options_test

import (
	"dataprovider/options"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleCategoryEnum_String() {
	fmt.Println(options.CategoryTextNumber | options.CategoryDuration)
	fmt.Println(options.CategoryEnum(options.CategoryNone))
	// Output:
	// duration|text_number
	// none
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := options.Default()
	assert.Equal(t, "|", cfg.Separator)
	assert.Equal(t, `\`, cfg.Escape)
	assert.Equal(t, "null", cfg.NullMarker)
	assert.True(t, cfg.TrimValues)
	assert.False(t, cfg.IgnoreEnumCase)
	assert.Equal(t, "[%i] %a[0..-1]", cfg.Format)
	assert.False(t, cfg.Categories.Has(options.CategoryLenientBool))
	assert.False(t, cfg.Categories.Has(options.CategoryUnsafeNumber))
	assert.True(t, cfg.Categories.Has(options.CategoryTextNumber|options.CategoryEnumString))
	require.NoError(t, cfg.Validate())
}

func TestNew_AppliesOptionsInOrder(t *testing.T) {
	t.Parallel()

	cfg := options.New(
		options.WithSeparator(","),
		options.WithNullMarker("NIL"),
		options.WithTrimValues(false),
		options.WithIgnoreEnumCase(),
		options.WithNameColumn(),
		options.WithFormat("%m #%i"),
		options.WithCategories(options.CategoryAll),
	)

	assert.Equal(t, ",", cfg.Separator)
	assert.Equal(t, "NIL", cfg.NullMarker)
	assert.False(t, cfg.TrimValues)
	assert.True(t, cfg.IgnoreEnumCase)
	assert.True(t, cfg.NameColumn)
	assert.Equal(t, "%m #%i", cfg.Format)
	assert.True(t, cfg.Categories.Has(options.CategoryLenientBool))

	cfg.Apply(options.WithoutNullConversion())
	assert.Empty(t, cfg.NullMarker)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, options.New(options.WithSeparator("")).Validate(), options.ErrEmptySeparator)
	assert.Error(t, options.New(options.WithSeparator(";"), options.WithEscape(";")).Validate())
	assert.NoError(t, options.New(options.WithEscape("")).Validate())
}

func TestParse(t *testing.T) {
	t.Parallel()

	yaml := `
separator: ";"
null_marker: ""
trim_values: false
ignore_enum_case: true
format: "%m[%i]"
categories: [default, lenient_bool]
`
	cfg, err := options.Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Separator)
	assert.Equal(t, `\`, cfg.Escape, "absent escape keeps the default")
	assert.Empty(t, cfg.NullMarker, "explicit empty marker disables null conversion")
	assert.False(t, cfg.TrimValues)
	assert.True(t, cfg.IgnoreEnumCase)
	assert.Equal(t, "%m[%i]", cfg.Format)
	assert.True(t, cfg.Categories.Has(options.CategoryLenientBool|options.CategoryTextNumber))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := options.Parse([]byte("categories: [bogus]"))
	assert.ErrorContains(t, err, "bogus")

	_, err = options.Parse([]byte(`separator: ""`))
	assert.ErrorIs(t, err, options.ErrEmptySeparator)

	_, err = options.Parse([]byte("separator: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config YAML")
}

func TestLoadFile_RoundTrip(t *testing.T) {
	t.Parallel()

	want := options.New(options.WithSeparator(","), options.WithNameColumn())

	data, err := options.Marshal(want)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dataprovider.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := options.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = options.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

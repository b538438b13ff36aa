package convert_test

import (
	"dataprovider/convert"
	"dataprovider/options"
	"dataprovider/source"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumMembers(t *testing.T) {
	t.Parallel()

	reg := convert.NewRegistry()
	convert.MustRegisterEnum(reg, Tuesday, Monday)

	assert.Equal(t, []Weekday{Tuesday, Monday}, convert.EnumMembers[Weekday](reg))
	assert.Nil(t, convert.EnumMembers[Color](reg))
	assert.Nil(t, convert.EnumMembers[Weekday](nil))
}

func TestForEachEnum(t *testing.T) {
	t.Parallel()

	reg := convert.NewRegistry()
	convert.MustRegisterEnum(reg, Monday, Tuesday)

	assert.Equal(t, [][]any{{Monday}, {Tuesday}}, convert.ForEachEnum[Weekday](reg))

	unregistered := convert.ForEachEnum[Point](reg)
	assert.Nil(t, unregistered)

	for _, err := range source.NewNormalizer(options.Default()).Rows(unregistered) {
		assert.ErrorIs(t, err, source.ErrNilSource)
	}
}

func TestForEachEnum_CrossProduct(t *testing.T) {
	t.Parallel()

	reg := convert.NewRegistry()
	convert.MustRegisterEnum(reg, Monday, Tuesday)

	rows := source.CrossProduct(convert.ForEachEnum[Weekday](reg), source.ForEach(1, 2))
	require.Len(t, rows, 4)
	assert.Equal(t, []any{Tuesday, 1}, rows[2])
}

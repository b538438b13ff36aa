package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Err())

	d.AddInfo(CodeCoercionRoute, "parsed as int", "TestSum", 0)
	d.AddWarning(CodeNoStringCoercion, "chan int has no string form", "TestSum", 1)
	assert.False(t, d.HasErrors())

	var other Diagnostics
	other.AddError(CodeBadResults, "must return nothing or error", "TestSum", -1)
	d.Merge(other)

	require.True(t, d.HasErrors())
	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.Warnings, 1)

	err := d.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDeclaration)
	assert.Equal(t,
		"invalid parametrized test declaration: [TestSum]: [bad_results] must return nothing or error",
		err.Error())

	var invalid *InvalidDeclarationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, CodeBadResults, invalid.Diagnostics[0].Code)
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "[f] param 2: [x] msg", Diagnostic{Code: "x", Message: "msg", Subject: "f", Param: 2}.String())
	assert.Equal(t, "msg", Diagnostic{Message: "msg", Param: -1}.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}

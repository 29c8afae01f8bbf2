package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catenary/urltools/internal/testutil"
)

func TestSetupBuildFlags(t *testing.T) {
	fs, flags := SetupBuildFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Params, "expected Params to be empty by default")
		assert.Empty(t, flags.ParamsFile, "expected ParamsFile to be empty by default")
		assert.Equal(t, FormatText, flags.Format, "expected Format to default to text")
		assert.Empty(t, flags.Config.Booleans, "expected Booleans to be empty by default")
		assert.Zero(t, flags.Config.Capacity, "expected Capacity to be zero by default")
		assert.False(t, flags.Config.JSONMode, "expected JSONMode to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{
			"-p", "id=42", "--param", "tab=posts",
			"--format", "json",
			"--booleans", "numeric", "--arrays", "delimited",
			"--delimiter", "|", "--capacity", "8192", "--json-mode",
			"/users/:id",
		}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, ParamList{"id=42", "tab=posts"}, flags.Params)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.Equal(t, "numeric", flags.Config.Booleans)
		assert.Equal(t, "delimited", flags.Config.Arrays)
		assert.Equal(t, "|", flags.Config.Delimiter)
		assert.Equal(t, 8192, flags.Config.Capacity)
		assert.True(t, flags.Config.JSONMode)
		assert.Equal(t, "/users/:id", fs.Arg(0))
	})
}

func TestParamList(t *testing.T) {
	var p ParamList

	require.NoError(t, p.Set("id=42"))
	require.NoError(t, p.Set("empty="))
	assert.Equal(t, ParamList{"id=42", "empty="}, p)
	assert.Equal(t, "id=42,empty=", p.String())

	err := p.Set("no-equals-sign")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have the form key=value")
}

func TestHandleBuild_NoArgs(t *testing.T) {
	err := HandleBuild([]string{})
	assert.Error(t, err)
}

func TestHandleBuild_Help(t *testing.T) {
	err := HandleBuild([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleBuild_TooManyArgs(t *testing.T) {
	err := HandleBuild([]string{"/users/:id", "/extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one template argument")
}

func TestHandleBuild_InvalidFormat(t *testing.T) {
	err := HandleBuild([]string{"--format", "xml", "/users/:id"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleBuild_InvalidTemplate(t *testing.T) {
	err := HandleBuild([]string{"-p", "id=42", "not a url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "building URL")
}

func TestHandleBuild_Success(t *testing.T) {
	err := HandleBuild([]string{"-p", "id=42", "-p", "tab=posts", "/users/:id"})
	assert.NoError(t, err)
}

func TestHandleBuild_ParamsFile(t *testing.T) {
	path := testutil.WriteTempYAML(t, map[string]any{
		"id":  7,
		"tab": "settings",
	})
	err := HandleBuild([]string{"--params", path, "/users/:id"})
	assert.NoError(t, err)
}

func TestCollectParams(t *testing.T) {
	t.Run("no sources", func(t *testing.T) {
		params, err := collectParams(&BuildFlags{})
		require.NoError(t, err)
		assert.Nil(t, params)
	})

	t.Run("inline only", func(t *testing.T) {
		flags := &BuildFlags{Params: ParamList{"id=42", "tab=posts"}}
		params, err := collectParams(flags)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"id": "42", "tab": "posts"}, params)
	})

	t.Run("document only", func(t *testing.T) {
		path := testutil.WriteTempYAML(t, map[string]any{"id": 42})
		flags := &BuildFlags{ParamsFile: path}
		params, err := collectParams(flags)
		require.NoError(t, err)

		m, ok := params.(map[string]any)
		require.True(t, ok, "expected map[string]any, got %T", params)
		assert.EqualValues(t, 42, m["id"])
	})

	t.Run("inline overrides document", func(t *testing.T) {
		path := testutil.WriteTempYAML(t, map[string]any{"id": 42, "tab": "posts"})
		flags := &BuildFlags{
			ParamsFile: path,
			Params:     ParamList{"id=7"},
		}
		params, err := collectParams(flags)
		require.NoError(t, err)

		m, ok := params.(map[string]any)
		require.True(t, ok, "expected map[string]any, got %T", params)
		assert.Equal(t, "7", m["id"], "inline -p should win over the document")
		assert.Equal(t, "posts", m["tab"])
	})

	t.Run("inline with non-mapping document", func(t *testing.T) {
		path := testutil.WriteTempYAML(t, []any{"a", "b"})
		flags := &BuildFlags{
			ParamsFile: path,
			Params:     ParamList{"id=7"},
		}
		_, err := collectParams(flags)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-mapping params document")
	})

	t.Run("empty key", func(t *testing.T) {
		flags := &BuildFlags{Params: ParamList{"=value"}}
		_, err := collectParams(flags)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty key")
	})

	t.Run("missing file", func(t *testing.T) {
		flags := &BuildFlags{ParamsFile: "/nonexistent/params.yaml"}
		_, err := collectParams(flags)
		assert.Error(t, err)
	})
}

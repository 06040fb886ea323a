package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResetMail(t *testing.T) {
	body, err := RenderResetMail("Alice", "https://app.example/reset?token=abc")
	require.NoError(t, err)

	assert.Contains(t, body, "Hello Alice,")
	assert.Contains(t, body, `href="https://app.example/reset?token=abc"`)
}

func TestRenderResetMail_EscapesName(t *testing.T) {
	body, err := RenderResetMail("<script>alert(1)</script>", "https://app.example/reset")
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}

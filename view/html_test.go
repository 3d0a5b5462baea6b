package view

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_BuildErrorWritesNothing(t *testing.T) {
	t.Parallel()

	errBuild := errors.New("encode failed")
	c := render(func(_ context.Context, b *strings.Builder) error {
		b.WriteString(`<div>partial`)
		return errBuild
	})

	var buf bytes.Buffer
	err := c.Render(context.Background(), &buf)
	assert.ErrorIs(t, err, errBuild)
	assert.Empty(t, buf.String())
}

func TestRender_WritesMarkup(t *testing.T) {
	t.Parallel()

	c := render(func(_ context.Context, b *strings.Builder) error {
		b.WriteString(`<p`)
		attr(b, "title", `a "quoted" <value>`)
		b.WriteByte('>')
		text(b, "Tom & Jerry")
		b.WriteString(`</p>`)
		return nil
	})

	var buf bytes.Buffer
	assert.NoError(t, c.Render(context.Background(), &buf))
	assert.Equal(t, `<p title="a &#34;quoted&#34; &lt;value&gt;">Tom &amp; Jerry</p>`, buf.String())
}

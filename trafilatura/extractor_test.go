package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Foo Function</title></head>
<body>
<nav><a href="/">Home</a><a href="/reference/">Reference</a></nav>
<main>
<article>
<h1>Foo Function</h1>
<p>Computes foo from its arguments. This is the main body of the reference
page and should survive boilerplate removal.</p>
<p>Additional usage details follow in a second paragraph so the extractor
has enough content to work with.</p>
</article>
</main>
<footer>Copyright</footer>
</body>
</html>`

	result, err := trafilatura.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Foo Function", result.Title)
	assert.Contains(t, result.ContentHTML, "Computes foo")
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := trafilatura.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
}

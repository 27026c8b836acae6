package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestScriptTexts(t *testing.T) {
	page := `<html><head>
		<script>var first = 1;</script>
		<script>   </script>
	</head><body>
		<p>ignored <b>text</b></p>
		<script>
			var second = {deals: []};
		</script>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	texts := ScriptTexts(doc)
	require.Equal(t, []string{
		"var first = 1;",
		"var second = {deals: []};",
	}, texts)
}

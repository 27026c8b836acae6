package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under node, ignoring markup.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// ScriptTexts returns the trimmed text content of every <script> element
// in the document, in document order. Empty scripts are skipped.
func ScriptTexts(doc *goquery.Document) []string {
	var texts []string
	for _, node := range doc.Find("script").Nodes {
		text := strings.TrimSpace(GetText(node))
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}
	return texts
}

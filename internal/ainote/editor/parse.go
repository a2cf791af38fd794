package editor

import (
	"io"
	"net/url"
	"slices"

	"golang.org/x/net/html"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/embed"
)

// ParseDocument разбирает HTML статьи обратно в дерево документа.
// Неизвестные элементы верхнего уровня пропускаются, неизвестные варианты
// message приводятся к info, embed-ноды с невалидным URL отбрасываются.
func ParseDocument(r io.Reader) (*Document, error) {
	rootNode, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var document Document

	for el := getBody(rootNode).FirstChild; el != nil; el = el.NextSibling {
		if block := parseBlock(el); block != nil {
			document.Blocks = append(document.Blocks, block)
		}
	}

	return &document, nil
}

func parseBlock(el *html.Node) any {
	if el.Type != html.ElementNode {
		return nil
	}

	switch el.Data {
	case "p":
		if p := parseParagraph(el); p != nil {
			return p
		}
	case "pre":
		return parseCodeBlock(el)
	case "aside":
		if attrExists("data-message", el.Attr) {
			return parseMessage(el)
		}
	case "details":
		if attrExists("data-details", el.Attr) {
			return parseDetails(el)
		}
	case "figure":
		if attrExists("data-embed", el.Attr) {
			if e := parseEmbed(el); e != nil {
				return e
			}
		}
	case "table":
		if t := parseTable(el); t != nil {
			return t
		}
	}

	return nil
}

func parseParagraph(root *html.Node) *Paragraph {
	if root.Type != html.ElementNode || root.Data != "p" {
		return nil
	}
	var p Paragraph

	for el := root.FirstChild; el != nil; el = el.NextSibling {
		if el.Type == html.ElementNode && el.Data == "br" {
			p.Content = append(p.Content, &HardBreak{})
			continue
		}

		if ref := parseFootnoteRef(el); ref != nil {
			p.Content = append(p.Content, ref)
			continue
		}

		p.Content = append(p.Content, getText(el))
	}

	return &p
}

func parseMessage(root *html.Node) *Message {
	variant := getAttrValue("data-variant", root.Attr)
	if variant != MessageAlert {
		variant = MessageInfo
	}

	message := Message{Variant: variant}

	for el := root.FirstChild; el != nil; el = el.NextSibling {
		if block := parseBlock(el); block != nil {
			message.Content = append(message.Content, block)
		}
	}

	return &message
}

func parseDetails(root *html.Node) *Details {
	details := Details{Open: attrExists("open", root.Attr)}

	for el := root.FirstChild; el != nil; el = el.NextSibling {
		if el.Type != html.ElementNode {
			continue
		}

		switch {
		case el.Data == "summary":
			for child := el.FirstChild; child != nil; child = child.NextSibling {
				if ref := parseFootnoteRef(child); ref != nil {
					details.Summary = append(details.Summary, ref)
				} else {
					details.Summary = append(details.Summary, getText(child))
				}
			}
		case attrExists("data-details-content", el.Attr):
			for child := el.FirstChild; child != nil; child = child.NextSibling {
				if block := parseBlock(child); block != nil {
					details.Content = append(details.Content, block)
				}
			}
		}
	}

	if len(details.Summary) == 0 {
		details.Summary = []any{Text{Content: DefaultDetailsTitle}}
	}

	return &details
}

func parseCodeBlock(root *html.Node) *CodeBlock {
	code := CodeBlock{
		Language: getAttrValue("data-language", root.Attr),
		Filename: getAttrValue("data-filename", root.Attr),
		Diff:     getAttrValue("data-diff", root.Attr) == "true",
	}
	if code.Language == "" {
		code.Language = "text"
	}

	iterNodes(root, func(child *html.Node) bool {
		if child.Type != html.TextNode {
			return false
		}
		code.Content += child.Data
		return false
	})

	return &code
}

func parseEmbed(root *html.Node) *Embed {
	rawURL := embed.Sanitize(getAttrValue("data-url", root.Attr))
	if rawURL == "" {
		return nil
	}

	service := embed.NormalizeServiceName(getAttrValue("data-service", root.Attr))
	if service == embed.ServiceNone {
		service = embed.ServiceLink
	}

	return &Embed{Service: service, URL: rawURL}
}

func parseFootnoteRef(el *html.Node) *FootnoteRef {
	if el.Type != html.ElementNode || el.Data != "sup" || !attrExists("data-footnote-ref", el.Attr) {
		return nil
	}

	id := getAttrValue("data-id", el.Attr)
	if id == "" {
		return nil
	}

	return NewFootnoteRef(id, getAttrValue("data-label", el.Attr))
}

func parseTable(root *html.Node) *Table {
	table := new(Table)

	tbody := findElementByTagName(root, "tbody")
	if tbody == nil {
		tbody = root
	}

	for tr := tbody.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type != html.ElementNode || tr.Data != "tr" {
			continue
		}
		var row []TableCell

		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || (td.Data != "td" && td.Data != "th") {
				continue
			}

			cell := TableCell{Header: td.Data == "th"}

			for p := td.FirstChild; p != nil; p = p.NextSibling {
				if parsed := parseParagraph(p); parsed != nil {
					cell.Content = *parsed
					break
				}
			}

			row = append(row, cell)
		}

		table.Rows = append(table.Rows, row)
	}

	if len(table.Rows) == 0 {
		return nil
	}

	// Строка заголовков обязательна.
	for c := range table.Rows[0] {
		table.Rows[0][c].Header = true
	}

	return table
}

func getText(root *html.Node) Text {
	var text Text

	iterNodes(root, func(el *html.Node) bool {
		if el.Type == html.TextNode {
			text.Content = el.Data
			return true
		}
		switch el.Data {
		case "em":
			text.Italic = true
		case "s":
			text.Strikethrough = true
		case "strong":
			text.Strong = true
		case "code":
			text.Code = true
		case "a":
			if u, err := url.Parse(getAttrValue("href", el.Attr)); err == nil {
				text.URL = u
			}
		}

		return false
	})

	return text
}

func findElementByTagName(rootNode *html.Node, tagName string) *html.Node {
	var el *html.Node
	iterNodes(rootNode, func(child *html.Node) bool {
		if child.Type == html.ElementNode && child.Data == tagName {
			el = child
			return true
		}
		return false
	})
	return el
}

func getBody(rootNode *html.Node) *html.Node {
	return findElementByTagName(rootNode, "body")
}

func iterNodes(node *html.Node, f func(child *html.Node) bool) {
	if f(node) {
		return
	}
	for p := node.FirstChild; p != nil; p = p.NextSibling {
		iterNodes(p, f)
	}
}

func getAttrValue(key string, attrs []html.Attribute) string {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func attrExists(key string, attrs []html.Attribute) bool {
	return slices.ContainsFunc(attrs, func(attr html.Attribute) bool {
		return attr.Key == key
	})
}

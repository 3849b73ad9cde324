package pipeline

import "golang.org/x/net/html"

// TagHandler reacts to an element while the tree is walked. Enter runs
// before the element's children, Exit after them. While either hook runs,
// the element itself is not yet (or no longer) on the writer's parent chain.
type TagHandler interface {
	Enter(n *html.Node, w *TextWriter)
	Exit(n *html.Node, w *TextWriter)
}

// BlockHandler puts block-level elements in their own paragraph.
type BlockHandler struct{}

func (BlockHandler) Enter(_ *html.Node, w *TextWriter) { w.ParagraphBreak() }
func (BlockHandler) Exit(_ *html.Node, w *TextWriter)  { w.ParagraphBreak() }

// LineBreakHandler turns <br> into a newline.
type LineBreakHandler struct{}

func (LineBreakHandler) Enter(_ *html.Node, w *TextWriter) { w.LineBreak() }
func (LineBreakHandler) Exit(*html.Node, *TextWriter)      {}

// blockTags lists the elements that start and end a paragraph.
var blockTags = []string{
	"address", "article", "aside", "blockquote", "caption", "dd", "details",
	"div", "dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "header", "hr", "li", "main", "nav",
	"ol", "p", "section", "summary", "table", "td", "th", "tr", "ul",
}

// skippedTags are dropped together with their content.
var skippedTags = map[string]bool{
	"head":     true,
	"iframe":   true,
	"noscript": true,
	"object":   true,
	"script":   true,
	"style":    true,
	"svg":      true,
	"template": true,
}

// defaultHandlers maps element names to their handlers.
func defaultHandlers(codeFences bool) map[string]TagHandler {
	handlers := make(map[string]TagHandler, len(blockTags)+4)
	for _, tag := range blockTags {
		handlers[tag] = BlockHandler{}
	}
	handlers["br"] = LineBreakHandler{}
	if codeFences {
		handlers["pre"] = CodeHandler{}
		handlers["code"] = CodeHandler{}
		handlers["samp"] = CodeHandler{}
	} else {
		handlers["pre"] = BlockHandler{}
	}
	return handlers
}

package pipeline

import "golang.org/x/net/html"

// CodeHandler renders code elements the way Markdown writes them:
// <pre> becomes a fenced block in its own paragraph, <code> and <samp>
// become inline spans. Inline markers are suppressed inside <pre>, which
// is already fenced.
type CodeHandler struct{}

// Enter opens the fence or inline span.
func (h CodeHandler) Enter(n *html.Node, w *TextWriter) {
	h.handle(n, w, true)
}

// Exit closes the fence or inline span.
func (h CodeHandler) Exit(n *html.Node, w *TextWriter) {
	h.handle(n, w, false)
}

func (CodeHandler) handle(n *html.Node, w *TextWriter, start bool) {
	switch n.Data {
	case "pre":
		if start {
			w.ParagraphBreak()
			w.WriteString("```\n")
			return
		}
		w.EndLine()
		w.WriteString("```")
		w.ParagraphBreak()
	case "code", "samp":
		if w.Within("pre") {
			return
		}
		w.WriteString("`")
	}
}

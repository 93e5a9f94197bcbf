// Package tags holds the static element-name classification tables
// consumed by the descriptor builder. A tag string the tables do not
// recognize is rendered as literal text rather than an element.
package tags

// htmlElements lists the native HTML element names the builder treats
// as elements.
var htmlElements = map[string]struct{}{}

// svgElements lists the SVG-namespace element names. They are kept in a
// separate table because a renderer targeting a namespaced document
// needs to create them differently.
var svgElements = map[string]struct{}{}

func init() {
	for _, name := range []string{
		"a", "abbr", "address", "area", "article", "aside", "audio",
		"b", "base", "bdi", "bdo", "blockquote", "body", "br", "button",
		"canvas", "caption", "cite", "code", "col", "colgroup",
		"data", "datalist", "dd", "del", "details", "dfn", "dialog",
		"div", "dl", "dt",
		"em", "embed",
		"fieldset", "figcaption", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup",
		"hr", "html",
		"i", "iframe", "img", "input", "ins",
		"kbd",
		"label", "legend", "li", "link",
		"main", "map", "mark", "menu", "meta", "meter",
		"nav", "noscript",
		"object", "ol", "optgroup", "option", "output",
		"p", "picture", "pre", "progress",
		"q",
		"rp", "rt", "ruby",
		"s", "samp", "script", "search", "section", "select", "slot",
		"small", "source", "span", "strong", "style", "sub", "summary",
		"sup",
		"table", "tbody", "td", "template", "textarea", "tfoot", "th",
		"thead", "time", "title", "tr", "track",
		"u", "ul",
		"var", "video",
		"wbr",
	} {
		htmlElements[name] = struct{}{}
	}

	for _, name := range []string{
		"circle", "clipPath", "defs", "ellipse", "filter",
		"foreignObject", "g", "image", "line", "linearGradient",
		"marker", "mask", "path", "pattern", "polygon", "polyline",
		"radialGradient", "rect", "stop", "svg", "symbol", "text",
		"textPath", "tspan", "use",
	} {
		svgElements[name] = struct{}{}
	}
}

// IsElement reports whether name is a recognized native element name in
// either the HTML or SVG table.
func IsElement(name string) bool {
	if _, ok := htmlElements[name]; ok {
		return true
	}
	return IsSVGElement(name)
}

// IsSVGElement reports whether name is an SVG-namespace element name.
func IsSVGElement(name string) bool {
	_, ok := svgElements[name]
	return ok
}

package descriptor

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	eerrors "github.com/eardeploy/cli/internal/errors"
)

// element is a minimal DOM node. Text holds the element's own text nodes in
// document order; whitespace-only nodes are discarded while decoding.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	text     []string
}

// decodeTree reads an XML document into an element tree rooted at a
// synthetic document node.
func decodeTree(r io.Reader) (*element, error) {
	doc := &element{}
	stack := []*element{doc}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, eerrors.NewStructureError(
				fmt.Sprintf("application.xml is not well-formed: %v", err), "", "")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, el)
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if s := string(t); strings.TrimSpace(s) != "" {
				cur := stack[len(stack)-1]
				cur.text = append(cur.text, s)
			}
		}
	}
	return doc, nil
}

// descendants returns every element below e named name, in document order.
func (e *element) descendants(name string) []*element {
	var out []*element
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
		out = append(out, c.descendants(name)...)
	}
	return out
}

// firstText returns the text of the first descendant named name, or def
// when there is none.
func (e *element) firstText(name, def string) string {
	found := e.descendants(name)
	if len(found) == 0 {
		return def
	}
	return strings.Join(found[0].text, "")
}

func fromTree(doc *element) (*Application, error) {
	apps := doc.descendants("application")
	if len(apps) == 0 {
		return nil, eerrors.NewStructureError("no application element found", "application", "")
	}
	app := apps[0]

	if v := app.attrs["version"]; v != SupportedVersion {
		return nil, eerrors.NewVersionError(v, SupportedVersion)
	}

	blocks := app.descendants("module")
	if len(blocks) != 1 {
		return nil, eerrors.NewStructureError(
			fmt.Sprintf("found %d module blocks, EARs with multiple deployments are not supported", len(blocks)),
			"module",
			"Declare all modules inside a single <module> element.")
	}

	modules := make([]Module, 0, len(blocks[0].children))
	for _, child := range blocks[0].children {
		m, err := moduleFrom(child)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}

	return &Application{
		Version:          SupportedVersion,
		Description:      app.firstText("description", ""),
		DisplayName:      app.firstText("display-name", ""),
		LibraryDirectory: app.firstText("library-directory", ""),
		Modules:          modules,
	}, nil
}

func moduleFrom(el *element) (Module, error) {
	if el.name != "web" {
		return &GenericModule{Tag: el.name}, nil
	}

	if len(el.descendants("web-uri")) == 0 || strings.TrimSpace(el.firstText("web-uri", "")) == "" {
		return nil, eerrors.NewStructureError("web module without web-uri", "web-uri", "")
	}
	if len(el.descendants("context-root")) == 0 {
		return nil, eerrors.NewStructureError("web module without context-root", "context-root", "")
	}
	return &WebModule{
		ID:          el.attrs["id"],
		WebURI:      el.firstText("web-uri", ""),
		ContextRoot: el.firstText("context-root", ""),
	}, nil
}

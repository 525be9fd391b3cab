// Package descriptor decodes the deployment descriptor of an Enterprise
// Archive (META-INF/application.xml).
//
// Only Java EE 6 descriptors with a single module block are supported:
//
//	<application version="6">
//	  <display-name>shop</display-name>
//	  <library-directory>lib</library-directory>
//	  <module>
//	    <web id="shop-web">
//	      <web-uri>shop-web.war</web-uri>
//	      <context-root>/shop</context-root>
//	    </web>
//	    <ejb>shop-ejb.jar</ejb>
//	  </module>
//	</application>
package descriptor

import (
	"bytes"
	"io"
)

// SupportedVersion is the only application version accepted by Parse.
const SupportedVersion = "6"

// Module is a deployable unit declared in the descriptor. It is implemented
// by *GenericModule and *WebModule only.
type Module interface {
	// Type returns the element name that declared the module ("web", "ejb", ...).
	Type() string
	// URI returns the in-archive path of the module, or "" when the module
	// type carries none.
	URI() string

	isModule()
}

// GenericModule is any module whose type has no dedicated decoding.
type GenericModule struct {
	Tag string `json:"type" yaml:"type"`
}

// Type implements Module.
func (m *GenericModule) Type() string { return m.Tag }

// URI implements Module. Generic modules carry no uri.
func (m *GenericModule) URI() string { return "" }

func (*GenericModule) isModule() {}

// WebModule is a web application declared by a <web> element.
type WebModule struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	WebURI      string `json:"webUri" yaml:"webUri"`
	ContextRoot string `json:"contextRoot" yaml:"contextRoot"`
}

// Type implements Module.
func (m *WebModule) Type() string { return "web" }

// URI implements Module.
func (m *WebModule) URI() string { return m.WebURI }

func (*WebModule) isModule() {}

// Application is a decoded application.xml.
type Application struct {
	Version          string
	Description      string
	DisplayName      string
	LibraryDirectory string
	Modules          []Module
}

// WebModules returns the web modules in declaration order.
func (a *Application) WebModules() []*WebModule {
	var out []*WebModule
	for _, m := range a.Modules {
		if w, ok := m.(*WebModule); ok {
			out = append(out, w)
		}
	}
	return out
}

// Parse decodes and validates an application descriptor.
func Parse(data []byte) (*Application, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader decodes and validates an application descriptor read from r.
func ParseReader(r io.Reader) (*Application, error) {
	root, err := decodeTree(r)
	if err != nil {
		return nil, err
	}
	return fromTree(root)
}

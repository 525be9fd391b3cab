// Package catalina locates a Tomcat installation and the library directories
// its class loaders read from.
package catalina

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/properties"
)

// Environment variables naming the installation.
const (
	EnvHome   = "CATALINA_HOME"
	EnvBase   = "CATALINA_BASE"
	EnvDeploy = "CATALINA_DEPLOY"
)

// Substitution variable names understood in catalina.properties.
const (
	VarHome = "catalina.home"
	VarBase = "catalina.base"
)

// LoaderKeys are the catalina.properties keys whose values list class loader
// locations, in the order they are consulted.
var LoaderKeys = []string{"common.loader", "shared.loader", "server.loader"}

// Paths are the resolved installation paths.
type Paths struct {
	Home       string `json:"home" yaml:"home"`
	Base       string `json:"base" yaml:"base"`
	Deploy     string `json:"deploy" yaml:"deploy"`
	Properties string `json:"properties" yaml:"properties"`
}

// Resolve fills in defaults for an installation. home is required; base
// defaults to home and deploy to <base>/webapps.
func Resolve(home, base, deploy string) (Paths, error) {
	if home == "" {
		return Paths{}, eerrors.NewValidationError(
			EnvHome+" must be set", "", "catalina.home",
			"Export "+EnvHome+", pass --catalina-home, or set catalina.home in the config file.")
	}
	if base == "" {
		base = home
	}
	if deploy == "" {
		deploy = filepath.Join(base, "webapps")
	}
	return Paths{
		Home:       home,
		Base:       base,
		Deploy:     deploy,
		Properties: filepath.Join(base, "conf", "catalina.properties"),
	}, nil
}

// Substitutions returns the variables applied while parsing catalina.properties.
func (p Paths) Substitutions() map[string]string {
	return map[string]string{
		VarHome: p.Home,
		VarBase: p.Base,
	}
}

// LoadProperties parses the installation's catalina.properties.
func LoadProperties(p Paths) (properties.Document, error) {
	f, err := os.Open(p.Properties)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, eerrors.NewNotFoundError("catalina.properties not found", p.Properties,
				"Check "+EnvBase+" or pass --library-target explicitly.")
		case errors.Is(err, fs.ErrPermission):
			return nil, eerrors.NewPermissionError("cannot read catalina.properties",
				map[string]string{"path": p.Properties}, "")
		default:
			return nil, err
		}
	}
	defer f.Close()

	doc, err := properties.Parse(f, p.Substitutions())
	if err != nil {
		var detail *eerrors.DetailError
		if errors.As(err, &detail) && detail.Location == "" {
			detail.Location = p.Properties
		}
		return nil, err
	}
	return doc, nil
}

// LibraryTargets collects the candidate library directories from the loader
// keys. Empty entries and "*.jar" globs are dropped; duplicates keep their
// first position. Missing keys contribute nothing.
func LibraryTargets(doc properties.Document) []string {
	seen := make(map[string]bool)
	var targets []string
	for _, key := range LoaderKeys {
		for _, entry := range doc.Strings(key) {
			entry = strings.TrimSpace(entry)
			if entry == "" || strings.HasSuffix(entry, "*.jar") || seen[entry] {
				continue
			}
			seen[entry] = true
			targets = append(targets, entry)
		}
	}
	return targets
}

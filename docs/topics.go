// Package docs holds the embedded help topics served by the topic command.
package docs

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Get returns the markdown content of one help topic.
func Get(name string) (string, error) {
	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no help topic %q, see 'tick topic readme' for the list", name)
	}
	return string(content), nil
}

// All returns the name of every topic except the readme index, in name order.
func All() []string {
	entries, err := topics.ReadDir(".")
	if err != nil {
		// the embedded FS is fixed at build time, its root always reads
		panic(err)
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	// ReadDir returns entries sorted by name
	return names
}

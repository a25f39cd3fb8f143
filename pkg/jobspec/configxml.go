package jobspec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-paramgen/pkg/params"
)

// xmlNode is a schemaless XML tree; Jenkins config.xml element names encode
// Java class names, so the decoder walks the tree by name instead of binding
// to fixed structs.
type xmlNode struct {
	XMLName  xml.Name
	Children []xmlNode `xml:",any"`
	Text     string    `xml:",chardata"`
}

func decodeConfigXML(data []byte, origin string) (Document, error) {
	var root xmlNode
	if err := xml.Unmarshal(normalizeDeclaration(data), &root); err != nil {
		return Document{}, fmt.Errorf("jobspec: parse %s: %w", origin, err)
	}

	doc := Document{Origin: origin}
	for _, container := range findAll(root, "parameterDefinitions") {
		for _, node := range container.Children {
			def := definitionFromNode(node)
			if def != nil {
				doc.Parameters = append(doc.Parameters, def)
			}
		}
	}
	return doc, nil
}

// normalizeDeclaration rewrites an XML 1.1 declaration to 1.0. Jenkins writes
// <?xml version='1.1' …?> while encoding/xml only accepts 1.0; the documents
// themselves never use 1.1-only constructs, so the downgrade is safe.
func normalizeDeclaration(data []byte) []byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return data
	}
	end := bytes.Index(trimmed, []byte("?>"))
	if end < 0 {
		return data
	}
	decl := trimmed[:end]
	for _, quoted := range []string{`"1.1"`, `'1.1'`} {
		if idx := bytes.Index(decl, []byte(quoted)); idx >= 0 {
			out := append([]byte(nil), trimmed...)
			copy(out[idx+1:idx+4], "1.0")
			return out
		}
	}
	return data
}

// findAll collects every descendant element with the given local name, in
// document order.
func findAll(node xmlNode, name string) []xmlNode {
	var out []xmlNode
	if node.XMLName.Local == name {
		out = append(out, node)
	}
	for _, child := range node.Children {
		out = append(out, findAll(child, name)...)
	}
	return out
}

// definitionFromNode maps one parameter element onto a typed definition when
// the simple class name is a Jenkins core kind, and onto a generic definition
// otherwise. Returns nil for elements without a name child, which are not
// well-formed parameters.
func definitionFromNode(node xmlNode) params.Definition {
	name := node.childText("name")
	if name == "" {
		return nil
	}
	description := node.childText("description")

	switch simpleClassName(node.XMLName.Local) {
	case params.KindString:
		return params.StringDefinition{
			Name:         name,
			Description:  description,
			DefaultValue: node.childText("defaultValue"),
			Trim:         node.childBool("trim"),
		}
	case params.KindText:
		return params.TextDefinition{
			Name:         name,
			Description:  description,
			DefaultValue: node.childText("defaultValue"),
		}
	case params.KindBoolean:
		return params.BooleanDefinition{
			Name:         name,
			Description:  description,
			DefaultValue: node.childBool("defaultValue"),
		}
	case params.KindChoice:
		return params.ChoiceDefinition{
			Name:        name,
			Description: description,
			Choices:     node.choiceValues(),
		}
	case params.KindPassword:
		return params.PasswordDefinition{
			Name:        name,
			Description: description,
		}
	case params.KindRun:
		return params.RunDefinition{
			Name:        name,
			Description: description,
			ProjectName: node.childText("projectName"),
			Filter:      node.childText("filter"),
		}
	case params.KindFile:
		return params.FileDefinition{
			Name:        name,
			Description: description,
		}
	default:
		return node.genericDefinition(name, description)
	}
}

// genericDefinition keeps every scalar child except name and description, in
// document order, coercing true/false text to booleans.
func (n xmlNode) genericDefinition(name, description string) params.GenericDefinition {
	def := params.GenericDefinition{
		Class:       simpleClassName(n.XMLName.Local),
		Name:        name,
		Description: description,
	}
	for _, child := range n.Children {
		key := child.XMLName.Local
		if key == "name" || key == "description" || len(child.Children) > 0 {
			continue
		}
		text := strings.TrimSpace(child.Text)
		if text == "" {
			continue
		}
		if text == "true" || text == "false" {
			def.Properties = append(def.Properties, params.Property{Name: key, Value: text == "true"})
			continue
		}
		def.Properties = append(def.Properties, params.Property{Name: key, Value: text})
	}
	return def
}

func (n xmlNode) child(name string) (xmlNode, bool) {
	for _, child := range n.Children {
		if child.XMLName.Local == name {
			return child, true
		}
	}
	return xmlNode{}, false
}

func (n xmlNode) childText(name string) string {
	child, ok := n.child(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(child.Text)
}

func (n xmlNode) childBool(name string) bool {
	parsed, err := strconv.ParseBool(n.childText(name))
	return err == nil && parsed
}

// choiceValues collects every <string> descendant under <choices>, matching
// the java.util.Arrays$ArrayList layout Jenkins serialises.
func (n xmlNode) choiceValues() []string {
	choices, ok := n.child("choices")
	if !ok {
		return nil
	}
	var out []string
	for _, str := range findAll(choices, "string") {
		out = append(out, strings.TrimSpace(str.Text))
	}
	return out
}

// simpleClassName reduces a fully qualified element name such as
// hudson.model.StringParameterDefinition to its final segment.
func simpleClassName(qualified string) string {
	if idx := strings.LastIndex(qualified, "."); idx >= 0 {
		return qualified[idx+1:]
	}
	return qualified
}

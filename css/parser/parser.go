// Package parser turns CSS text into the rule blocks consumed by the
// cascade: selector paths with their specificity and source order, and
// typed property declarations.
//
// The heavy lifting of tokenizing stylesheet syntax is delegated to
// douceur; this package maps its output onto the typed property model.
package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	douceur "github.com/aymerick/douceur/parser"

	pr "github.com/retainedui/cascade/css/properties"
	sel "github.com/retainedui/cascade/css/selector"
	"github.com/retainedui/cascade/logger"
)

// Declaration is one parsed property declaration.
type Declaration struct {
	Variable  string // var() reference; set only for dynamic declarations
	Value     pr.AnyValue
	Type      pr.PropertyType
	IsDynamic bool
	Important bool
}

// RuleBlock is one selector with its declarations. SourceIndex records
// the position in the stylesheet, used to break specificity ties.
type RuleBlock struct {
	Path         sel.Path
	Declarations []Declaration
	Specificity  cascadia.Specificity
	SourceIndex  int
}

// Stylesheet is the parsed form of one CSS source.
type Stylesheet struct {
	Rules []RuleBlock
}

// SortRules orders rules by ascending specificity, breaking ties by
// source order, so that later application wins.
func (s *Stylesheet) SortRules() {
	sort.SliceStable(s.Rules, func(i, j int) bool {
		si, sj := s.Rules[i].Specificity, s.Rules[j].Specificity
		if si != sj {
			return si.Less(sj)
		}
		return s.Rules[i].SourceIndex < s.Rules[j].SourceIndex
	})
}

// ParseStylesheet parses CSS text. Unsupported selectors, unknown
// properties and invalid values are skipped with a warning: a broken
// rule never fails the whole stylesheet.
func ParseStylesheet(text string) (*Stylesheet, error) {
	parsed, err := douceur.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %s", err)
	}
	out := &Stylesheet{}
	for _, rule := range parsed.Rules {
		if rule.Kind == css.AtRule {
			logger.WarningLogger.Printf("ignored at-rule %s", rule.Name)
			continue
		}
		decls := parseRuleDeclarations(rule.Declarations)
		if len(decls) == 0 {
			continue
		}
		for _, selText := range rule.Selectors {
			path, err := sel.ParsePath(selText)
			if err != nil {
				logger.WarningLogger.Printf("ignored selector %q: %s", selText, err)
				continue
			}
			out.Rules = append(out.Rules, RuleBlock{
				Path:         path,
				Specificity:  path.Specificity(),
				SourceIndex:  len(out.Rules),
				Declarations: decls,
			})
		}
	}
	return out, nil
}

// ParseInlineStyle parses the content of a style attribute. Invalid
// declarations are skipped with a warning.
func ParseInlineStyle(text string) []Declaration {
	// douceur drops the value of a final declaration that has no
	// terminating semicolon, so complete it before parsing
	if t := strings.TrimSpace(text); t == "" {
		return nil
	} else if !strings.HasSuffix(t, ";") {
		text = t + ";"
	}
	parsed, err := douceur.ParseDeclarations(text)
	if err != nil {
		logger.WarningLogger.Printf("ignored inline style %q: %s", text, err)
		return nil
	}
	return parseRuleDeclarations(parsed)
}

func parseRuleDeclarations(src []*css.Declaration) []Declaration {
	var out []Declaration
	for _, d := range src {
		decls, err := parseDeclaration(d.Property, d.Value, d.Important)
		if err != nil {
			logger.WarningLogger.Printf("ignored declaration %s: %s: %s", d.Property, d.Value, err)
			continue
		}
		out = append(out, decls...)
	}
	return out
}

// parseDeclaration parses one declaration, expanding shorthands into
// their longhand parts.
func parseDeclaration(property, value string, important bool) ([]Declaration, error) {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)

	if expanded, ok := expandShorthand(property, value); ok {
		var out []Declaration
		for _, e := range expanded {
			decls, err := parseDeclaration(e.property, e.value, important)
			if err != nil {
				return nil, err
			}
			out = append(out, decls...)
		}
		return out, nil
	}

	propType, in := propertyAliases[property]
	if !in {
		propType, in = pr.PropertyByName[property]
	}
	if !in {
		return nil, fmt.Errorf("unknown property")
	}

	if variable, ok := cutVarReference(value); ok {
		return []Declaration{{Type: propType, IsDynamic: true, Variable: variable, Important: important}}, nil
	}

	v, err := ParseValue(propType, value)
	if err != nil {
		return nil, err
	}
	return []Declaration{{Type: propType, Value: v, Important: important}}, nil
}

// propertyAliases maps alternative spellings onto the canonical
// property set.
var propertyAliases = map[string]pr.PropertyType{
	"background-color":     pr.PBackgroundContent,
	"background-image":     pr.PBackgroundContent,
	"word-wrap":            pr.POverflowWrap,
	"text-decoration-line": pr.PTextDecoration,
	"tab-width":            pr.PTabWidth,
}

// cutVarReference recognizes a var(--name) value.
func cutVarReference(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "var(") || !strings.HasSuffix(v, ")") {
		return "", false
	}
	return strings.TrimSpace(v[4 : len(v)-1]), true
}

type subDeclaration struct {
	property, value string
}

// expandShorthand expands the supported shorthand properties into their
// longhand declarations.
func expandShorthand(property, value string) ([]subDeclaration, bool) {
	switch property {
	case "margin", "padding", "inset":
		names := [4]string{"top", "right", "bottom", "left"}
		prefix, suffix := property+"-", ""
		if property == "inset" {
			prefix = ""
		}
		return expandFourSides(prefix, suffix, names, value), true
	case "border-width", "border-style", "border-color":
		part := strings.TrimPrefix(property, "border-")
		return expandFourSides("border-", "-"+part, [4]string{"top", "right", "bottom", "left"}, value), true
	case "border-radius":
		return expandFourSides("border-", "-radius",
			[4]string{"top-left", "top-right", "bottom-right", "bottom-left"}, value), true
	case "border", "border-top", "border-right", "border-bottom", "border-left":
		return expandBorder(property, value)
	case "overflow":
		fields := fieldsTopLevel(value)
		if len(fields) == 1 {
			fields = append(fields, fields[0])
		}
		if len(fields) != 2 {
			return nil, false
		}
		return []subDeclaration{
			{"overflow-x", fields[0]},
			{"overflow-y", fields[1]},
		}, true
	case "gap":
		fields := fieldsTopLevel(value)
		if len(fields) == 1 {
			fields = append(fields, fields[0])
		}
		if len(fields) != 2 {
			return nil, false
		}
		return []subDeclaration{
			{"row-gap", fields[0]},
			{"column-gap", fields[1]},
		}, true
	case "flex":
		return expandFlex(value)
	case "box-shadow":
		return []subDeclaration{
			{"box-shadow-left", value},
			{"box-shadow-right", value},
			{"box-shadow-top", value},
			{"box-shadow-bottom", value},
		}, true
	}
	return nil, false
}

// expandFourSides implements the 1-to-4 value repetition of the CSS
// box shorthands.
func expandFourSides(prefix, suffix string, names [4]string, value string) []subDeclaration {
	fields := fieldsTopLevel(value)
	var top, right, bottom, left string
	switch len(fields) {
	case 1:
		top, right, bottom, left = fields[0], fields[0], fields[0], fields[0]
	case 2:
		top, right, bottom, left = fields[0], fields[1], fields[0], fields[1]
	case 3:
		top, right, bottom, left = fields[0], fields[1], fields[2], fields[1]
	case 4:
		top, right, bottom, left = fields[0], fields[1], fields[2], fields[3]
	default:
		return nil
	}
	return []subDeclaration{
		{prefix + names[0] + suffix, top},
		{prefix + names[1] + suffix, right},
		{prefix + names[2] + suffix, bottom},
		{prefix + names[3] + suffix, left},
	}
}

// expandBorder distributes the width / style / color parts of the
// border shorthands.
func expandBorder(property, value string) ([]subDeclaration, bool) {
	sides := []string{"top", "right", "bottom", "left"}
	if side := strings.TrimPrefix(property, "border-"); side != "border" && side != property {
		sides = []string{side}
	}
	var out []subDeclaration
	for _, f := range fieldsTopLevel(value) {
		lower := strings.ToLower(f)
		var part string
		switch {
		case lower == "none" || pr.BorderStyleByName[lower] != pr.BorderStyleNone:
			part = "style"
		case isBorderWidth(lower):
			part = "width"
		default:
			if _, err := ParseColor(f); err != nil {
				return nil, false
			}
			part = "color"
		}
		for _, side := range sides {
			out = append(out, subDeclaration{"border-" + side + "-" + part, f})
		}
	}
	return out, len(out) != 0
}

func isBorderWidth(s string) bool {
	if _, in := pr.BorderWidthKeywords[s]; in {
		return true
	}
	_, err := ParseLength(s)
	return err == nil
}

// expandFlex implements the flex shorthand: none, a bare grow factor,
// or grow [shrink] [basis].
func expandFlex(value string) ([]subDeclaration, bool) {
	if strings.ToLower(value) == "none" {
		return []subDeclaration{
			{"flex-grow", "0"}, {"flex-shrink", "0"}, {"flex-basis", "auto"},
		}, true
	}
	fields := fieldsTopLevel(value)
	if len(fields) == 0 {
		return nil, false
	}
	out := []subDeclaration{
		{"flex-grow", fields[0]}, {"flex-shrink", "1"}, {"flex-basis", "0%"},
	}
	switch len(fields) {
	case 1:
	case 2:
		out[1].value = fields[1]
	case 3:
		out[1].value = fields[1]
		out[2].value = fields[2]
	default:
		return nil, false
	}
	return out, true
}

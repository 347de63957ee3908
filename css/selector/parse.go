package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses one selector such as `div.wrapper > p:hover`.
// Unsupported selector syntax yields an error; the caller is expected
// to skip the rule.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, fmt.Errorf("empty selector")
	}

	// isolate combinators so compounds split on whitespace
	for _, c := range []string{">", "+", "~"} {
		s = strings.ReplaceAll(s, c, " "+c+" ")
	}

	var path Path
	needCombinator := false
	for _, tok := range strings.Fields(s) {
		var comb Combinator
		isComb := true
		switch tok {
		case ">":
			comb = Child
		case "+":
			comb = AdjacentSibling
		case "~":
			comb = GeneralSibling
		default:
			isComb = false
		}
		if isComb {
			if !needCombinator {
				return Path{}, fmt.Errorf("misplaced combinator %q in %q", tok, s)
			}
			path.Items = append(path.Items, comb)
			needCombinator = false
			continue
		}
		if needCombinator {
			path.Items = append(path.Items, Descendant)
		}
		items, err := parseCompound(tok)
		if err != nil {
			return Path{}, err
		}
		path.Items = append(path.Items, items...)
		needCombinator = true
	}
	if !needCombinator {
		return Path{}, fmt.Errorf("selector %q ends with a combinator", s)
	}
	return path, nil
}

// parseCompound parses one compound selector such as `div.foo#bar:hover`.
func parseCompound(s string) ([]Item, error) {
	var out []Item
	for len(s) != 0 {
		switch s[0] {
		case '*':
			out = append(out, Universal{})
			s = s[1:]
		case '.':
			name, rest := takeName(s[1:])
			if name == "" {
				return nil, fmt.Errorf("empty class name in %q", s)
			}
			out = append(out, Class{Name: name})
			s = rest
		case '#':
			name, rest := takeName(s[1:])
			if name == "" {
				return nil, fmt.Errorf("empty id in %q", s)
			}
			out = append(out, Id{Name: name})
			s = rest
		case ':':
			ps, rest, err := parsePseudo(s[1:])
			if err != nil {
				return nil, err
			}
			out = append(out, ps)
			s = rest
		default:
			name, rest := takeName(s)
			if name == "" {
				return nil, fmt.Errorf("unexpected character %q in selector", s[0])
			}
			out = append(out, Tag{Name: strings.ToLower(name)})
			s = rest
		}
	}
	return out, nil
}

func takeName(s string) (name, rest string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '.' || c == '#' || c == ':' || c == '*' || c == '(' || c == ')' {
			break
		}
		i++
	}
	return s[:i], s[i:]
}

func parsePseudo(s string) (Pseudo, string, error) {
	name, rest := takeName(s)
	switch strings.ToLower(name) {
	case "hover":
		return Pseudo{Kind: PseudoHover}, rest, nil
	case "active":
		return Pseudo{Kind: PseudoActive}, rest, nil
	case "focus":
		return Pseudo{Kind: PseudoFocus}, rest, nil
	case "first-child":
		return Pseudo{Kind: PseudoFirst}, rest, nil
	case "last-child":
		return Pseudo{Kind: PseudoLast}, rest, nil
	case "nth-child":
		if len(rest) == 0 || rest[0] != '(' {
			return Pseudo{}, "", fmt.Errorf("nth-child needs an argument")
		}
		close := strings.IndexByte(rest, ')')
		if close == -1 {
			return Pseudo{}, "", fmt.Errorf("unclosed nth-child argument")
		}
		nth, err := parseNth(rest[1:close])
		if err != nil {
			return Pseudo{}, "", err
		}
		return Pseudo{Kind: PseudoNthChild, Nth: nth}, rest[close+1:], nil
	default:
		return Pseudo{}, "", fmt.Errorf("unsupported pseudo-class :%s", name)
	}
}

// parseNth parses the An+B micro-syntax: `even`, `odd`, `7`, `2n`,
// `2n+1`, `-n+3`.
func parseNth(s string) (Nth, error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	switch s {
	case "even":
		return Nth{A: 2, B: 0}, nil
	case "odd":
		return Nth{A: 2, B: 1}, nil
	}
	n := strings.IndexByte(s, 'n')
	if n == -1 {
		b, err := strconv.Atoi(s)
		if err != nil {
			return Nth{}, fmt.Errorf("invalid nth-child argument %q", s)
		}
		return Nth{A: 0, B: b}, nil
	}
	aStr, bStr := s[:n], s[n+1:]
	var out Nth
	switch aStr {
	case "", "+":
		out.A = 1
	case "-":
		out.A = -1
	default:
		a, err := strconv.Atoi(aStr)
		if err != nil {
			return Nth{}, fmt.Errorf("invalid nth-child argument %q", s)
		}
		out.A = a
	}
	if bStr != "" {
		b, err := strconv.Atoi(strings.TrimPrefix(bStr, "+"))
		if err != nil {
			return Nth{}, fmt.Errorf("invalid nth-child argument %q", s)
		}
		out.B = b
	}
	return out, nil
}

package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Operator is a comparison operator in a version constraint.
type Operator string

const (
	OpEqual        Operator = "="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpCaret        Operator = "^"
	OpTilde        Operator = "~"
)

// operators is ordered so two-character operators are matched first.
var operators = []Operator{OpGreaterEqual, OpLessEqual, OpGreater, OpLess, OpEqual, OpCaret, OpTilde}

// Comparator is a single "op version" clause.
type Comparator struct {
	Op      Operator
	Version Version
}

func (c Comparator) matches(v Version) bool {
	cmp := v.Compare(c.Version)
	switch c.Op {
	case OpGreater:
		return cmp > 0
	case OpGreaterEqual:
		return cmp >= 0
	case OpLess:
		return cmp < 0
	case OpLessEqual:
		return cmp <= 0
	default:
		return cmp == 0
	}
}

// Constraint is a conjunction of comparators parsed from a string such as
// "3.27.1", "^4.0.0", "[>=1.2.0 <2.0.0]".
type Constraint struct {
	raw         string
	comparators []Comparator
	// declared holds the comparators as written, before ^ and ~ are expanded.
	declared []Comparator
}

// ParseConstraint parses s. It returns ErrMalformedConstraint when s does not
// match the grammar.
func ParseConstraint(s string) (Constraint, error) {
	malformed := func(reason string) (Constraint, error) {
		err := zerr.With(zerr.Wrap(ErrMalformedConstraint, reason), "constraint", s)
		return Constraint{}, zerr.With(err, "reason", reason)
	}

	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "[") || strings.HasSuffix(body, "]") {
		if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
			return malformed("unbalanced brackets")
		}
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return malformed("empty constraint")
	}

	tokens := joinDetachedOperators(strings.Fields(body))
	c := Constraint{raw: s}
	for _, token := range tokens {
		op, rest := splitOperator(token)
		if rest == "" {
			return malformed("operator without version")
		}
		v, err := ParseVersion(rest)
		if err != nil {
			return malformed("version must be major.minor.patch")
		}
		c.declared = append(c.declared, Comparator{Op: op, Version: v})
		c.comparators = append(c.comparators, expand(op, v)...)
	}
	return c, nil
}

// joinDetachedOperators merges ">=", "1.0.0" into ">=1.0.0".
func joinDetachedOperators(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if isOperator(tok) && i+1 < len(tokens) {
			tok += tokens[i+1]
			i++
		}
		out = append(out, tok)
	}
	return out
}

func isOperator(s string) bool {
	for _, op := range operators {
		if s == string(op) {
			return true
		}
	}
	return false
}

func splitOperator(token string) (Operator, string) {
	for _, op := range operators {
		if strings.HasPrefix(token, string(op)) {
			return op, token[len(op):]
		}
	}
	return OpEqual, token
}

// expand rewrites caret and tilde into a lower and an upper bound.
func expand(op Operator, v Version) []Comparator {
	switch op {
	case OpCaret:
		var upper Version
		switch {
		case v.Major > 0:
			upper = Version{Major: v.Major + 1}
		case v.Minor > 0:
			upper = Version{Minor: v.Minor + 1}
		default:
			upper = Version{Patch: v.Patch + 1}
		}
		return []Comparator{{Op: OpGreaterEqual, Version: v}, {Op: OpLess, Version: upper}}
	case OpTilde:
		upper := Version{Major: v.Major, Minor: v.Minor + 1}
		return []Comparator{{Op: OpGreaterEqual, Version: v}, {Op: OpLess, Version: upper}}
	default:
		return []Comparator{{Op: op, Version: v}}
	}
}

// Satisfies reports whether v meets every comparator. A prerelease version only
// satisfies the constraint if some declared comparator names a prerelease with
// the same major.minor.patch.
func (c Constraint) Satisfies(v Version) bool {
	if len(c.comparators) == 0 {
		return false
	}
	if v.Prerelease != "" && !c.allowsPrereleaseOf(v.Core()) {
		return false
	}
	for _, cmp := range c.comparators {
		if !cmp.matches(v) {
			return false
		}
	}
	return true
}

func (c Constraint) allowsPrereleaseOf(core Version) bool {
	for _, cmp := range c.declared {
		if cmp.Version.Prerelease != "" && cmp.Version.Core() == core {
			return true
		}
	}
	return false
}

// IsExact reports whether the constraint pins a single version.
func (c Constraint) IsExact() bool {
	return len(c.declared) == 1 && c.declared[0].Op == OpEqual
}

// String returns the constraint as it was declared.
func (c Constraint) String() string {
	return c.raw
}

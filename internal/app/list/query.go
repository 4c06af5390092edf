package list

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muurk/debloater/internal/catalog"
)

// QueryLexer tokenises the search box.
//
//	tier:expert list:google installed "play services" chrome
var QueryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Key", Pattern: `(?i)(tier|list):`},
	{Name: "Installed", Pattern: `(?i)installed\b`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Word", Pattern: `[^\s"]+`},
})

// QueryAST is the parsed search box.
type QueryAST struct {
	Terms []*Term `parser:"@@*"`
}

// Term is one search term.
type Term struct {
	Filter    *Filter `parser:"  @@"`
	Installed bool    `parser:"| @Installed"`
	Word      string  `parser:"| @(String | Word)"`
}

// Filter is a key:value term.
type Filter struct {
	Key   string `parser:"@Key"`
	Value string `parser:"@(String | Word)"`
}

var queryParser = participle.MustBuild[QueryAST](
	participle.Lexer(QueryLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// Query is a compiled search.
type Query struct {
	Tier          *catalog.Removal
	List          string
	InstalledOnly bool
	Words         []string
}

// ParseQuery compiles the search box text. An empty string matches everything.
func ParseQuery(input string) (Query, error) {
	var q Query
	if strings.TrimSpace(input) == "" {
		return q, nil
	}

	ast, err := queryParser.ParseString("", input)
	if err != nil {
		return Query{}, fmt.Errorf("invalid search: %w", err)
	}

	for _, term := range ast.Terms {
		switch {
		case term.Filter != nil:
			key := strings.ToLower(strings.TrimSuffix(term.Filter.Key, ":"))
			switch key {
			case "tier":
				tier, err := catalog.ParseRemoval(term.Filter.Value)
				if err != nil {
					return Query{}, fmt.Errorf("invalid search: %w", err)
				}
				q.Tier = &tier
			case "list":
				q.List = term.Filter.Value
			}
		case term.Installed:
			q.InstalledOnly = true
		case term.Word != "":
			q.Words = append(q.Words, term.Word)
		}
	}
	return q, nil
}

// Empty reports whether q matches everything.
func (q Query) Empty() bool {
	return q.Tier == nil && q.List == "" && !q.InstalledOnly && len(q.Words) == 0
}

// Match reports whether row satisfies every term of q.
func (q Query) Match(r Row) bool {
	if q.Tier != nil && r.Package.Removal != *q.Tier {
		return false
	}
	if q.List != "" && !strings.EqualFold(r.Package.List, q.List) {
		return false
	}
	if q.InstalledOnly && !r.Installed {
		return false
	}
	for _, w := range q.Words {
		if !fuzzy.MatchNormalizedFold(w, r.Package.ID) && !fuzzy.MatchNormalizedFold(w, r.Package.Description) {
			return false
		}
	}
	return true
}

package list

import (
	"reflect"
	"testing"

	"github.com/muurk/debloater/internal/catalog"
)

func TestParseQuery(t *testing.T) {
	expert := catalog.Expert

	tests := []struct {
		name    string
		input   string
		want    Query
		wantErr bool
	}{
		{name: "empty", input: "   ", want: Query{}},
		{name: "words", input: "chrome print", want: Query{Words: []string{"chrome", "print"}}},
		{name: "tier", input: "tier:expert", want: Query{Tier: &expert}},
		{name: "list case", input: "LIST:Google", want: Query{List: "Google"}},
		{name: "installed", input: "installed gms", want: Query{InstalledOnly: true, Words: []string{"gms"}}},
		{name: "installed prefix is a word", input: "installedapps", want: Query{Words: []string{"installedapps"}}},
		{name: "quoted", input: `"play services"`, want: Query{Words: []string{"play services"}}},
		{name: "quoted filter", input: `list:"Oem"`, want: Query{List: "Oem"}},
		{name: "unknown tier", input: "tier:sometimes", wantErr: true},
		{name: "dangling key", input: "tier:", wantErr: true},
		{name: "unterminated quote", input: `"play`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuery(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (got.Tier == nil) != (tt.want.Tier == nil) || (got.Tier != nil && *got.Tier != *tt.want.Tier) {
				t.Errorf("Tier = %v, want %v", got.Tier, tt.want.Tier)
			}
			if got.List != tt.want.List {
				t.Errorf("List = %q, want %q", got.List, tt.want.List)
			}
			if got.InstalledOnly != tt.want.InstalledOnly {
				t.Errorf("InstalledOnly = %v, want %v", got.InstalledOnly, tt.want.InstalledOnly)
			}
			if len(got.Words) != len(tt.want.Words) {
				t.Fatalf("Words = %q, want %q", got.Words, tt.want.Words)
			}
			for i := range got.Words {
				if got.Words[i] != tt.want.Words[i] {
					t.Errorf("Words[%d] = %q, want %q", i, got.Words[i], tt.want.Words[i])
				}
			}
		})
	}
}

func TestQueryMatch(t *testing.T) {
	row := Row{
		Package: catalog.Package{
			ID:          "com.google.android.gms",
			List:        "Google",
			Description: "Google Play Services",
			Removal:     catalog.Unsafe,
		},
		Installed: true,
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"gms", true},
		{"ggms", true},
		{"play", true},
		{"chrome", false},
		{"tier:unsafe list:google installed", true},
		{"tier:recommended", false},
		{"list:oem", false},
	}

	for _, tt := range tests {
		q, err := ParseQuery(tt.input)
		if err != nil {
			t.Fatalf("ParseQuery(%q) error = %v", tt.input, err)
		}
		if got := q.Match(row); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGrammarTagsAreKeyed(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeFor[QueryAST](),
		reflect.TypeFor[Term](),
		reflect.TypeFor[Filter](),
	} {
		for i := range typ.NumField() {
			f := typ.Field(i)
			if _, ok := f.Tag.Lookup("parser"); !ok {
				t.Errorf("%s.%s: grammar tag %q has no parser key", typ.Name(), f.Name, f.Tag)
			}
		}
	}
}

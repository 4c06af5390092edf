package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseRemoval(t *testing.T) {
	tests := []struct {
		in      string
		want    Removal
		wantErr bool
	}{
		{"Recommended", Recommended, false},
		{"advanced", Advanced, false},
		{" EXPERT ", Expert, false},
		{"Unsafe", Unsafe, false},
		{"Unlisted", Unlisted, false},
		{"dangerous", Unlisted, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRemoval(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRemoval(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRemoval(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmbeddedCatalog(t *testing.T) {
	c, err := NewLoader("").LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}

	gms, ok := c.Get("com.google.android.gms")
	if !ok {
		t.Fatal("embedded catalog is missing com.google.android.gms")
	}
	if gms.Removal != Unsafe {
		t.Errorf("gms removal = %v, want Unsafe", gms.Removal)
	}

	sorted := c.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].ID >= sorted[i].ID {
			t.Fatalf("Sorted() not ordered at %d: %q >= %q", i, sorted[i-1].ID, sorted[i].ID)
		}
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`- id: com.example.bloat
  list: Oem
  description: Example bloat
  removal: advanced
- id: com.example.other
  description: No list given
  removal: Recommended
`)

	c, err := Parse("test.yaml", data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got := c["com.example.bloat"].Removal; got != Advanced {
		t.Errorf("removal = %v, want Advanced", got)
	}
	if got := c["com.example.other"].List; got != "Misc" {
		t.Errorf("default list = %q, want Misc", got)
	}
	if lists := c.Lists(); len(lists) != 2 || lists[0] != "Misc" || lists[1] != "Oem" {
		t.Errorf("Lists() = %v, want [Misc Oem]", lists)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"duplicate id", `[{"id":"a","removal":"Recommended"},{"id":"a","removal":"Expert"}]`},
		{"missing id", `[{"list":"Oem","removal":"Recommended"}]`},
		{"bad tier", `[{"id":"a","removal":"Sometimes"}]`},
		{"not a list", `{"id":"a"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("inline", []byte(tt.data))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if pe.Source != "inline" {
				t.Errorf("Source = %q, want inline", pe.Source)
			}
		})
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := l.LoadCatalog(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadCatalog() error = %v, want ErrNotExist", err)
	}
}

func TestLoaderUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[{"id":"com.example.only","list":"Oem","description":"Only","removal":"Recommended"}]`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := NewLoader(path).LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if _, ok := c.Get("com.example.only"); !ok || c.Len() != 1 {
		t.Errorf("catalog = %v, want single com.example.only entry", c)
	}
}

func TestLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLoader("").LoadCatalog(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadCatalog() error = %v, want context.Canceled", err)
	}
}

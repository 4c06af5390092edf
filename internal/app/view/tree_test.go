package view

import (
	"encoding/json"
	"strings"
	"testing"
)

type press string

func sample() Node {
	return Column(
		Row(Text("Device: Pixel 6"), Spacer(), Button("refresh", "Refresh", press("refresh"))),
		List("rows",
			Item("row.a", "com.a", "Recommended", true, true, press("a")),
			Item("row.b", "com.b", "Expert", false, false, press("b")),
		),
	)
}

func TestFind(t *testing.T) {
	tree := sample()

	n, ok := tree.Find("row.b")
	if !ok {
		t.Fatal("Find(row.b) not found")
	}
	if n.OnPress != press("b") {
		t.Errorf("OnPress = %v, want b", n.OnPress)
	}
	if _, ok := tree.Find("missing"); ok {
		t.Error("Find(missing) should fail")
	}
}

func TestMapDoesNotMutateOriginal(t *testing.T) {
	tree := sample()
	mapped := tree.Map(func(v any) any { return "wrapped:" + string(v.(press)) })

	n, _ := mapped.Find("refresh")
	if n.OnPress != "wrapped:refresh" {
		t.Errorf("mapped OnPress = %v", n.OnPress)
	}
	n, _ = tree.Find("refresh")
	if n.OnPress != press("refresh") {
		t.Errorf("original OnPress changed to %v", n.OnPress)
	}
	if got := len(mapped.Actions()); got != 3 {
		t.Errorf("Actions() = %d, want 3", got)
	}
}

func TestPlainText(t *testing.T) {
	text := sample().PlainText()
	for _, want := range []string{"Device: Pixel 6", "Refresh", "com.a", "com.b"} {
		if !strings.Contains(text, want) {
			t.Errorf("PlainText() missing %q:\n%s", want, text)
		}
	}
}

func TestJSONOmitsActions(t *testing.T) {
	data, err := json.Marshal(Button("nav", "About", press("about")))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != `{"kind":"button","id":"nav","text":"About"}` {
		t.Errorf("json = %s", got)
	}
}

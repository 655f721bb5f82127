package adf

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestToText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Null", `null`, ""},
		{"Empty", ``, ""},
		{"Plain_String", `"  legacy v2 description "`, "legacy v2 description"},
		{"Empty_Document", `{"type":"doc","version":1,"content":[]}`, ""},
		{
			"Paragraphs",
			`{"type":"doc","content":[
				{"type":"paragraph","content":[{"type":"text","text":"First"}]},
				{"type":"paragraph","content":[{"type":"text","text":"Second"},{"type":"hardBreak"},{"type":"text","text":"line"}]}
			]}`,
			"First\n\nSecond\nline",
		},
		{
			"Bullet_List",
			`{"type":"doc","content":[{"type":"bulletList","content":[
				{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"one"}]}]},
				{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"two"}]}]}
			]}]}`,
			"- one\n- two",
		},
		{
			"Ordered_List_With_Nested_Bullets",
			`{"type":"doc","content":[{"type":"orderedList","content":[
				{"type":"listItem","content":[
					{"type":"paragraph","content":[{"type":"text","text":"step"}]},
					{"type":"bulletList","content":[{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"detail"}]}]}]}
				]}
			]}]}`,
			"1. step\n  - detail",
		},
		{
			"Task_List",
			`{"type":"doc","content":[{"type":"taskList","content":[
				{"type":"taskItem","attrs":{"state":"TODO"},"content":[{"type":"text","text":"open"}]},
				{"type":"taskItem","attrs":{"state":"DONE"},"content":[{"type":"text","text":"closed"}]}
			]}]}`,
			"- [ ] open\n- [x] closed",
		},
		{
			"Mention_And_Emoji",
			`{"type":"doc","content":[{"type":"paragraph","content":[
				{"type":"text","text":"ping "},
				{"type":"mention","attrs":{"id":"abc","text":"@Jane"}},
				{"type":"text","text":" "},
				{"type":"emoji","attrs":{"shortName":":smile:"}}
			]}]}`,
			"ping @Jane :smile:",
		},
		{
			"Unknown_Node_Falls_Back_To_Children",
			`{"type":"doc","content":[{"type":"panel","content":[{"type":"paragraph","content":[{"type":"text","text":"inside"}]}]}]}`,
			"inside",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToText(json.RawMessage(tt.raw)); got != tt.want {
				t.Errorf("ToText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromText(t *testing.T) {
	got := FromText("Hello\nworld\n\nSecond paragraph")
	want := map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": "Hello"},
					map[string]any{"type": "hardBreak"},
					map[string]any{"type": "text", "text": "world"},
				},
			},
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": "Second paragraph"},
				},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromText() = %#v, want %#v", got, want)
	}
}

func TestFromText_RoundTripsThroughToText(t *testing.T) {
	doc := FromText("line one\nline two\n\nnext")
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := ToText(raw); got != "line one\nline two\n\nnext" {
		t.Errorf("round trip = %q", got)
	}
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"paragraphs", "<p>First</p>\n\n<p>Second</p>", "First\n\nSecond"},
		{"entities", "<p>Tom &amp; Jerry &lt;3</p>", "Tom & Jerry <3"},
		{"compact paragraphs", "<p>First</p><p>Second</p>", "First\n\nSecond"},
		{"list", "<p>AC:</p>\n<ul>\n\t<li>one</li>\n\t<li>two</li>\n</ul>", "AC:\n\n- one\n- two"},
		{"compact list", "<p>AC:</p><ul><li>one</li><li>two</li></ul><p>Notes</p>", "AC:\n\n- one\n- two\n\nNotes"},
		{"paragraph in list item", "<ul><li><p>one</p></li><li><p>two</p></li></ul>", "- one\n- two"},
		{"heading", "<h2>Scope</h2><p>Only web</p>", "Scope\n\nOnly web"},
		{"line break", "a<br/>b", "a\nb"},
		{"inline markup", "<p><b>bold</b> and <a href=\"x\">link</a></p>", "bold and link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLToText(tt.in); got != tt.want {
				t.Errorf("HTMLToText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

package jira

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMapIssueSummary_Defaults(t *testing.T) {
	cfg := Config{BaseURL: "https://example.atlassian.net"}
	got := MapIssueSummary(IssueDTO{Key: "PROJ-1", Fields: FieldsDTO{Summary: "S"}}, cfg)

	want := IssueSummary{
		Key:      "PROJ-1",
		Summary:  "S",
		Status:   "Unknown",
		Assignee: "Unassigned",
		Priority: "None",
		URL:      "https://example.atlassian.net/browse/PROJ-1",
	}
	if got != want {
		t.Errorf("MapIssueSummary() = %+v, want %+v", got, want)
	}
}

func TestMapIssueDetail(t *testing.T) {
	cfg := Config{BaseURL: "https://example.atlassian.net"}

	var item IssueDTO
	raw := `{
		"key": "PROJ-2",
		"fields": {
			"summary": "Checkout",
			"status": {"name": "In Progress"},
			"assignee": {"displayName": "Ann"},
			"reporter": {"displayName": "Bob"},
			"priority": {"name": "High"},
			"issuetype": {"name": "Story"},
			"parent": {"key": "PROJ-1", "fields": {"summary": "Payments epic"}},
			"created": "2024-03-05T09:00:00.000+0000",
			"updated": "2024-03-06T09:00:00.000+0000",
			"description": {"type": "doc", "version": 1, "content": [
				{"type": "paragraph", "content": [{"type": "text", "text": "Given a cart when paying then a receipt is sent"}]}
			]}
		}
	}`
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := MapIssueDetail(item, cfg)
	if got.Status != "In Progress" || got.Assignee != "Ann" || got.Reporter != "Bob" || got.IssueType != "Story" {
		t.Errorf("unexpected header fields: %+v", got)
	}
	if got.Parent != "PROJ-1 - Payments epic" {
		t.Errorf("Parent = %q", got.Parent)
	}
	if got.Description != "Given a cart when paying then a receipt is sent" {
		t.Errorf("Description = %q", got.Description)
	}
	want := []string{"Given a cart when paying then a receipt is sent"}
	if !reflect.DeepEqual(got.AcceptanceCriteria, want) {
		t.Errorf("AcceptanceCriteria = %#v, want %#v", got.AcceptanceCriteria, want)
	}
}

func TestMapIssueDetail_PrefersRenderedDescription(t *testing.T) {
	item := IssueDTO{
		Key: "PROJ-3",
		Fields: FieldsDTO{
			Description: json.RawMessage(`"raw text"`),
		},
		RenderedFields: &RenderedFieldsDTO{Description: "<p>AC:</p><ul><li>one</li><li>two</li></ul>"},
	}

	got := MapIssueDetail(item, Config{})
	if got.Description == "raw text" {
		t.Fatalf("rendered description was ignored")
	}
	if len(got.AcceptanceCriteria) == 0 {
		t.Fatalf("expected acceptance criteria from rendered list, got none")
	}
	last := got.AcceptanceCriteria[len(got.AcceptanceCriteria)-1]
	if last != "two" {
		t.Errorf("last criterion = %q, want %q", last, "two")
	}
}

func TestMapIssueDetail_RenderedAndRawAgree(t *testing.T) {
	raw := json.RawMessage(`{"type": "doc", "version": 1, "content": [
		{"type": "paragraph", "content": [{"type": "text", "text": "Acceptance Criteria: users can log in"}]},
		{"type": "paragraph", "content": [{"type": "text", "text": "Deployment happens on Friday."}]},
		{"type": "bulletList", "content": [
			{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "audit logged"}]}]},
			{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "email sent"}]}]}
		]}
	]}`)
	rendered := "<p>Acceptance Criteria: users can log in</p><p>Deployment happens on Friday.</p>" +
		"<ul><li>audit logged</li><li>email sent</li></ul>"

	fromRaw := MapIssueDetail(IssueDTO{Key: "PROJ-5", Fields: FieldsDTO{Description: raw}}, Config{})
	fromHTML := MapIssueDetail(IssueDTO{
		Key:            "PROJ-5",
		Fields:         FieldsDTO{Description: raw},
		RenderedFields: &RenderedFieldsDTO{Description: rendered},
	}, Config{})

	want := []string{"users can log in", "audit logged", "email sent"}
	if !reflect.DeepEqual(fromRaw.AcceptanceCriteria, want) {
		t.Errorf("raw AcceptanceCriteria = %#v, want %#v", fromRaw.AcceptanceCriteria, want)
	}
	if !reflect.DeepEqual(fromHTML.AcceptanceCriteria, fromRaw.AcceptanceCriteria) {
		t.Errorf("rendered AcceptanceCriteria = %#v, raw = %#v", fromHTML.AcceptanceCriteria, fromRaw.AcceptanceCriteria)
	}
	if fromHTML.Description != fromRaw.Description {
		t.Errorf("rendered Description = %q, raw = %q", fromHTML.Description, fromRaw.Description)
	}
}

func TestMapIssueDetail_NoDescription(t *testing.T) {
	got := MapIssueDetail(IssueDTO{Key: "PROJ-4"}, Config{})
	if got.Description != "" {
		t.Errorf("Description = %q, want empty", got.Description)
	}
	if got.AcceptanceCriteria == nil || len(got.AcceptanceCriteria) != 0 {
		t.Errorf("AcceptanceCriteria = %#v, want empty non-nil", got.AcceptanceCriteria)
	}
}

func TestMapComments(t *testing.T) {
	resp := &CommentsResponse{Comments: []CommentDTO{
		{Author: &UserDTO{DisplayName: "Ann"}, RenderedBody: "<p>Looks <b>good</b></p>", Created: "c1"},
		{Body: json.RawMessage(`{"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text","text":"plain"}]}]}`), Created: "c2"},
	}}

	got := MapComments(resp)
	want := []Comment{
		{Author: "Ann", Created: "c1", Body: "Looks good"},
		{Author: "Unknown", Created: "c2", Body: "plain"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapComments() = %#v, want %#v", got, want)
	}

	if MapComments(nil) != nil {
		t.Errorf("MapComments(nil) should be nil")
	}
}

func TestMapTransitions(t *testing.T) {
	got := MapTransitions([]TransitionDTO{
		{ID: "11", Name: "Start Progress", To: NamedDTO{Name: "In Progress"}},
		{ID: "31", Name: "Done", To: NamedDTO{Name: "Done"}},
	})
	want := []Transition{
		{ID: "11", Name: "Start Progress", ToStatus: "In Progress"},
		{ID: "31", Name: "Done", ToStatus: "Done"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MapTransitions() = %#v, want %#v", got, want)
	}
}

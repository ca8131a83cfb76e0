package docflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_NewIsEmptyDraft(t *testing.T) {
	doc := NewDocument()

	AssertPhase(t, doc, PhaseDraft)
	AssertContent(t, doc, "")
	assert.NotEmpty(t, doc.ID())
	assert.Equal(t, 0, doc.Approvals())
}

func TestDocument_WithID(t *testing.T) {
	doc := NewDocument(WithID("post-1"))
	assert.Equal(t, "post-1", doc.ID())
}

func TestDocument_GeneratedIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewDocument().ID(), NewDocument().ID())
}

func TestDocument_PublishScenario(t *testing.T) {
	doc := NewDocument()

	doc.AddText("I ate salad for lunch today")
	AssertContent(t, doc, "")

	doc.RequestReview()
	AssertContent(t, doc, "")
	AssertPhase(t, doc, PhasePendingReview)

	doc.Approve()
	AssertPhase(t, doc, PhasePublished)
	AssertContent(t, doc, "I ate salad for lunch today")
}

func TestDocument_RejectScenario(t *testing.T) {
	doc := NewDocument()

	doc.AddText("draft text")
	doc.RequestReview()
	doc.Reject()
	AssertPhase(t, doc, PhaseDraft)
	AssertContent(t, doc, "")

	doc.AddText(" more text")
	doc.RequestReview()
	doc.Approve()
	AssertContent(t, doc, "draft text more text")
}

func TestDocument_AddTextConcatenatesInOrder(t *testing.T) {
	doc := NewDocument()
	for _, s := range []string{"a", "b", "", "c"} {
		doc.AddText(s)
	}

	doc.RequestReview()
	doc.Approve()
	AssertContent(t, doc, "abc")
}

func TestDocument_AddTextIgnoredOutsideDraft(t *testing.T) {
	doc := CreateReviewDocument("kept")
	doc.AddText(" dropped")

	doc.Approve()
	doc.AddText(" also dropped")
	AssertContent(t, doc, "kept")
}

func TestDocument_IllegalTransitionsAreNoOps(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Document
		op    func(*Document)
		phase Phase
	}{
		{"approve in draft", func() *Document { return NewDocument() }, (*Document).Approve, PhaseDraft},
		{"reject in draft", func() *Document { return NewDocument() }, (*Document).Reject, PhaseDraft},
		{"request review twice", func() *Document { return CreateReviewDocument("x") }, (*Document).RequestReview, PhasePendingReview},
		{"approve when published", func() *Document { return CreatePublishedDocument("x") }, (*Document).Approve, PhasePublished},
		{"reject when published", func() *Document { return CreatePublishedDocument("x") }, (*Document).Reject, PhasePublished},
		{"request review when published", func() *Document { return CreatePublishedDocument("x") }, (*Document).RequestReview, PhasePublished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.setup()
			before := doc.Content()

			tt.op(doc)

			AssertPhase(t, doc, tt.phase)
			assert.Equal(t, before, doc.Content())
		})
	}
}

func TestDocument_NoDirectDraftToPublished(t *testing.T) {
	doc := NewDocument()
	doc.AddText("text")
	doc.Approve()

	AssertPhase(t, doc, PhaseDraft)
	AssertContent(t, doc, "")
}

func TestDocument_Approvals(t *testing.T) {
	doc := CreateReviewDocument("text")
	assert.Equal(t, 0, doc.Approvals())

	doc.Reject()
	assert.Equal(t, 0, doc.Approvals())

	doc.RequestReview()
	doc.Approve()
	assert.Equal(t, 1, doc.Approvals())

	doc.Approve()
	assert.Equal(t, 1, doc.Approvals(), "approving a published document should not count")
}

func TestDocument_StateHandleReplacedOnTransition(t *testing.T) {
	doc := NewDocument()
	draft := doc.State()

	doc.RequestReview()
	require.NotNil(t, doc.State())
	assert.NotEqual(t, draft, doc.State())
	assert.Equal(t, PhasePendingReview, doc.State().Phase())
}

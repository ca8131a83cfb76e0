package typestate_test

import (
	"reflect"
	"testing"

	"github.com/anggasct/docflow/pkg/typestate"
	"github.com/stretchr/testify/assert"
)

func TestTypestate(t *testing.T) {
	t.Run("publish", func(t *testing.T) {
		draft := typestate.New().AddText("I ate salad for lunch today")
		assert.Equal(t, "", draft.Content())

		review := draft.RequestReview()
		assert.Equal(t, "", review.Content())

		published := review.Approve()
		assert.Equal(t, "I ate salad for lunch today", published.Content())
	})

	t.Run("reject and resubmit", func(t *testing.T) {
		draft := typestate.New().AddText("draft text")
		draft = draft.RequestReview().Reject()
		assert.Equal(t, "", draft.Content())

		published := draft.AddText(" more text").RequestReview().Approve()
		assert.Equal(t, "draft text more text", published.Content())
	})

	t.Run("id survives transitions", func(t *testing.T) {
		draft := typestate.NewWithID("post-7")
		review := draft.RequestReview()
		published := review.Reject().RequestReview().Approve()

		assert.Equal(t, "post-7", review.ID())
		assert.Equal(t, "post-7", published.ID())
	})

	t.Run("generated ids", func(t *testing.T) {
		assert.NotEmpty(t, typestate.New().ID())
		assert.NotEqual(t, typestate.New().ID(), typestate.New().ID())
	})

	t.Run("superseded draft is unchanged", func(t *testing.T) {
		first := typestate.New().AddText("a")
		second := first.AddText("b")

		assert.Equal(t, "a", first.RequestReview().Approve().Content())
		assert.Equal(t, "ab", second.RequestReview().Approve().Content())
	})
}

func TestTypestate_MethodSets(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		present []string
		absent  []string
	}{
		{
			name:    "draft",
			value:   typestate.DraftDoc{},
			present: []string{"AddText", "RequestReview", "Content", "ID"},
			absent:  []string{"Approve", "Reject"},
		},
		{
			name:    "review",
			value:   typestate.ReviewDoc{},
			present: []string{"Approve", "Reject", "Content", "ID"},
			absent:  []string{"AddText", "RequestReview"},
		},
		{
			name:    "published",
			value:   typestate.PublishedDoc{},
			present: []string{"Content", "ID"},
			absent:  []string{"AddText", "RequestReview", "Approve", "Reject"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := reflect.TypeOf(tt.value)
			for _, m := range tt.present {
				_, ok := typ.MethodByName(m)
				assert.True(t, ok, "%s should have %s", typ.Name(), m)
			}
			for _, m := range tt.absent {
				_, ok := typ.MethodByName(m)
				assert.False(t, ok, "%s should not have %s", typ.Name(), m)
			}
		})
	}
}

func TestTypestate_PublishedCannotBeEdited(t *testing.T) {
	var published any = typestate.New().RequestReview().Approve()

	_, ok := published.(interface{ AddText(string) typestate.PublishedDoc })
	assert.False(t, ok)
	_, ok = published.(interface{ AddText(string) typestate.DraftDoc })
	assert.False(t, ok)
}

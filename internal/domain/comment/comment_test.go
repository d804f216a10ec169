package comment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/comment"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

func TestValidateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"plain", "looks good", false},
		{"at limit", strings.Repeat("a", comment.MaxTextLength), false},
		{"blank", " \n\t", true},
		{"too long", strings.Repeat("a", comment.MaxTextLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := comment.ValidateText(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsAuthoredBy(t *testing.T) {
	t.Parallel()

	author := idx.New()
	c := &comment.Comment{AuthorID: author}

	assert.True(t, c.IsAuthoredBy(author))
	assert.False(t, c.IsAuthoredBy(idx.New()))
}

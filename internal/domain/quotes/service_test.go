package quotes

import (
	"context"
	"strings"
	"testing"
	"time"

	"friends-directory/internal/domain/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Quote
}

func (r *testRepo) Create(ctx context.Context, q Quote) error {
	r.byID[q.ID] = q
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Quote, error) {
	q, ok := r.byID[id]
	if !ok {
		return Quote{}, ErrNotFound
	}
	return q, nil
}

func (r *testRepo) ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]Quote, error) {
	var out []Quote
	for _, q := range r.byID {
		if q.FriendID == friendID && (includeDeleted || q.DeletedAt == nil) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *testRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	q, ok := r.byID[id]
	if !ok || q.DeletedAt != nil {
		return ErrNotFound
	}
	q.DeletedAt = &at
	r.byID[id] = q
	return nil
}

func TestCreate_AuthorDefaultsToUnknown(t *testing.T) {
	svc := NewService(&testRepo{byID: map[string]Quote{}})

	q, err := svc.Create(context.Background(), uuid.NewString(), CreateInput{Text: "  Carpe diem "})
	require.NoError(t, err)
	assert.Equal(t, "Carpe diem", q.Text)
	assert.Equal(t, "Unknown", q.Author)
}

func TestCreate_LengthLimits(t *testing.T) {
	svc := NewService(&testRepo{byID: map[string]Quote{}})

	_, err := svc.Create(context.Background(), uuid.NewString(), CreateInput{
		Text:   strings.Repeat("x", 1001),
		Author: strings.Repeat("y", 201),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	fields := validation.FieldsOf(err)
	assert.Equal(t, "Quote text cannot exceed 1000 characters.", fields["Text"])
	assert.Equal(t, "Author cannot exceed 200 characters.", fields["Author"])

	_, err = svc.Create(context.Background(), uuid.NewString(), CreateInput{Text: "   "})
	assert.Equal(t, "Quote text is required.", validation.FieldsOf(err)["Text"])
}

func TestDeleteQuote(t *testing.T) {
	repo := &testRepo{byID: map[string]Quote{}}
	svc := NewService(repo)
	ctx := context.Background()
	friendID := uuid.NewString()

	q, err := svc.Create(ctx, friendID, CreateInput{Text: "Hello"})
	require.NoError(t, err)

	deleted, err := svc.DeleteQuote(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt)

	visible, err := svc.ListByFriend(ctx, friendID, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = svc.DeleteQuote(ctx, q.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.DeleteQuote(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

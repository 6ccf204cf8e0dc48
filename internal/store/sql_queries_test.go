// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package store

import (
	"strings"
	"testing"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetPostQuery(t *testing.T) {
	query, args, err := buildGetPostQuery(5, 42)
	require.NoError(t, err)

	// viewer id feeds both membership flags, post id goes last
	require.Equal(t, []any{int64(42), int64(42), int64(5)}, args)

	assert.Contains(t, query, "($1::bigint = ANY(liked_by)) AS has_liked")
	assert.Contains(t, query, "($2::bigint = ANY(disliked_by)) AS has_disliked")
	assert.Contains(t, query, "cardinality(liked_by) AS likes")
	assert.Contains(t, query, "FROM posts")
	assert.Contains(t, query, "WHERE id = $3")

	// reaction sets themselves are never selected
	assert.NotContains(t, query, "liked_by,")
}

func Test_buildListPostsQuery(t *testing.T) {
	query, args, err := buildListPostsQuery(0)
	require.NoError(t, err)

	require.Equal(t, []any{int64(0), int64(0)}, args)
	assert.NotContains(t, strings.ToUpper(query), "WHERE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY created_at DESC, id DESC"))
}

func Test_buildUpdatePostQuery(t *testing.T) {
	title := "t"
	content := "c"
	keywords := []string{"a", "b"}

	tests := []struct {
		name      string
		update    models.PostUpdate
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "title only",
			update:    models.PostUpdate{PostID: 1, Title: &title},
			wantQuery: "UPDATE posts SET title = $1, updated_at = NOW() WHERE id = $2",
			wantArgs:  []any{"t", int64(1)},
		},
		{
			name:      "all fields",
			update:    models.PostUpdate{PostID: 2, Title: &title, Content: &content, Keywords: &keywords},
			wantQuery: "UPDATE posts SET title = $1, content = $2, keywords = $3, updated_at = NOW() WHERE id = $4",
			wantArgs:  []any{"t", "c", []byte(`["a","b"]`), int64(2)},
		},
		{
			name:      "nothing but timestamp",
			update:    models.PostUpdate{PostID: 3},
			wantQuery: "UPDATE posts SET updated_at = NOW() WHERE id = $1",
			wantArgs:  []any{int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdatePostQuery(tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_reactToPostStatement(t *testing.T) {
	// single statement, keyed by post id, reporting both counts
	assert.Contains(t, reactToPost, "WHERE id = $1")
	assert.Contains(t, reactToPost, "RETURNING cardinality(liked_by), cardinality(disliked_by)")
	assert.Equal(t, 1, strings.Count(reactToPost, "UPDATE posts"))
}

func Test_keywordsRoundTrip(t *testing.T) {
	data, err := encodeKeywords(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	keywords, err := decodeKeywords(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, keywords)

	_, err = decodeKeywords([]byte(`"not a list"`))
	assert.ErrorIs(t, err, ErrEncodingKeywords)
}

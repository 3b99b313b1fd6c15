package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"guid", "guid"},
		{"analysis_notes", "analysisNotes"},
		{"case_review_status_last_modified_by", "caseReviewStatusLastModifiedBy"},
		{"pedigree_image", "pedigreeImage"},
		{"analysisNotes", "analysisNotes"},
		{"gene_ID", "geneId"},
		{"mme_URL_path", "mmeUrlPath"},
		{"last-modified date", "lastModifiedDate"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camelKey(tt.input))
		})
	}
}

func TestTransformKeys(t *testing.T) {
	t.Run("lifts the guid and camel cases the rest", func(t *testing.T) {
		result, guid, found := TransformKeys(Flat{
			{Key: "display_name", Value: "Fam"},
			{Key: "guid", Value: "F1"},
			{Key: "analysis_notes", Value: nil},
		})

		assert.True(t, found)
		assert.Equal(t, "F1", guid)
		assert.Equal(t, []string{"displayName", "analysisNotes"}, result.Keys())
		assert.False(t, result.Has("guid"))
		assert.True(t, result.Has("analysisNotes"))
	})

	t.Run("no guid", func(t *testing.T) {
		result, guid, found := TransformKeys(Flat{{Key: "name", Value: "x"}})
		assert.False(t, found)
		assert.Nil(t, guid)
		assert.Equal(t, 1, result.Len())
	})

	t.Run("does not touch values", func(t *testing.T) {
		doc := map[string]any{"snake_key": 1}
		result, _, _ := TransformKeys(Flat{{Key: "phenotips_data", Value: doc}})
		v, _ := result.Get("phenotipsData")
		assert.Equal(t, doc, v)
	})
}

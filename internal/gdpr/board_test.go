package gdpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
)

func TestNewBoard(t *testing.T) {
	t.Parallel()

	t.Run("empty list has five empty buckets", func(t *testing.T) {
		t.Parallel()

		b := gdpr.NewBoard(nil)
		assert.Len(t, b.Buckets, 5)
		for i, bucket := range b.Buckets {
			assert.Equal(t, gdpr.RequestTypes[i], bucket.Type)
			assert.Zero(t, bucket.Count())
		}
		assert.Zero(t, b.Total())
	})

	t.Run("groups by type keeping order", func(t *testing.T) {
		t.Parallel()

		b := gdpr.NewBoard([]gdpr.DataRequest{
			{Email: "a@x.com", Type: gdpr.RequestDelete},
			{Email: "b@x.com", Type: gdpr.RequestAccess},
			{Email: "c@x.com", Type: gdpr.RequestRectify, Data: "Data X is wrong."},
			{Email: "d@x.com", Type: gdpr.RequestDelete},
			{Email: "e@x.com", Type: "unknown"},
			{Email: "f@x.com", Type: gdpr.RequestComplaint, Data: "Reasons."},
		})

		assert.Equal(t, 5, b.Total())
		assert.Equal(t, 1, b.Bucket(gdpr.RequestAccess).Count())
		assert.Equal(t, 1, b.Bucket(gdpr.RequestRectify).Count())
		assert.Equal(t, 0, b.Bucket(gdpr.RequestPortability).Count())
		assert.Equal(t, 1, b.Bucket(gdpr.RequestComplaint).Count())

		del := b.Bucket(gdpr.RequestDelete)
		assert.Equal(t, 2, del.Count())
		assert.Equal(t, "a@x.com", del.Rows[0].Email)
		assert.Equal(t, "d@x.com", del.Rows[1].Email)
		assert.Equal(t, "Erasure", del.Label())
		assert.Equal(t, "Data X is wrong.", b.Bucket(gdpr.RequestRectify).Rows[0].Data)
	})
}

func TestRequestTypeLabels(t *testing.T) {
	t.Parallel()

	want := map[gdpr.RequestType]string{
		gdpr.RequestAccess:      "Access Data",
		gdpr.RequestRectify:     "Rectify Data",
		gdpr.RequestPortability: "Data Portability",
		gdpr.RequestComplaint:   "Complaint",
		gdpr.RequestDelete:      "Erasure",
	}
	for typ, label := range want {
		assert.Equal(t, label, typ.Label())
		assert.True(t, typ.Valid())
	}
	assert.False(t, gdpr.RequestType("other").Valid())
	assert.True(t, gdpr.RequestRectify.HasData())
	assert.False(t, gdpr.RequestDelete.HasData())
}

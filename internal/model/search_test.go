package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) ResultSet {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	rs, err := DecodeResultSet(raw)
	require.NoError(t, err)
	return rs
}

func TestDecodeResultSetKnownKinds(t *testing.T) {
	rs := decode(t, `{
		"joblisting": [
			{"jobId": 7, "title": "Go Developer", "salary": 250000, "location": "Kigali", "jobCategory": {"categoryName": "Engineering"}},
			{"jobId": 3, "title": "Backend Developer"}
		],
		"application": [
			{"applicationId": 11, "status": "PENDING", "job": {"title": "Go Developer"}, "user": {"username": "alice", "email": "alice@example.com"}}
		]
	}`)

	require.Len(t, rs[KindJobListing], 2)
	require.Len(t, rs[KindApplication], 1)
	assert.Equal(t, 3, rs.Count())

	first := rs[KindJobListing][0].(JobListing)
	assert.Equal(t, int64(7), first.ItemID())
	assert.Equal(t, "Engineering", first.CategoryName())
	assert.Equal(t, int64(3), rs[KindJobListing][1].ItemID(), "backend order is kept")

	app := rs[KindApplication][0].(Application)
	assert.Equal(t, StatusPending, app.Status)
	assert.Equal(t, "Go Developer", app.JobTitle())
	assert.Equal(t, "alice", app.ApplicantName())
	assert.Equal(t, "alice@example.com", app.ApplicantEmail())
}

func TestDecodeResultSetNormalizesKindKeys(t *testing.T) {
	rs := decode(t, `{"JobListing": [{"jobId": 1}], "Application": null}`)

	assert.Len(t, rs[KindJobListing], 1)
	items, ok := rs[KindApplication]
	assert.True(t, ok, "a null kind is still present")
	assert.Empty(t, items)
	assert.False(t, rs.Empty())
}

func TestDecodeResultSetUnknownKind(t *testing.T) {
	rs := decode(t, `{"user": [{"userId": 5, "username": "bob"}]}`)

	require.Len(t, rs["user"], 1)
	g, ok := rs["user"][0].(Generic)
	require.True(t, ok)
	assert.Equal(t, Kind("user"), g.Kind())
	assert.Equal(t, int64(5), g.ItemID())
	assert.Equal(t, "bob", g.Fields["username"])
}

func TestDecodeResultSetMalformedKind(t *testing.T) {
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(`{"joblisting": {"jobId": 1}}`), &raw))

	_, err := DecodeResultSet(raw)
	assert.Error(t, err)
}

func TestEmptyResultSet(t *testing.T) {
	assert.True(t, ResultSet{}.Empty())
	assert.True(t, ResultSet(nil).Empty())
	assert.Equal(t, 0, ResultSet(nil).Count())
}

func TestNilNestedRecords(t *testing.T) {
	app := Application{ApplicationID: 1}
	assert.Empty(t, app.JobTitle())
	assert.Empty(t, app.ApplicantName())
	assert.Empty(t, app.ApplicantEmail())
	assert.Empty(t, JobListing{}.CategoryName())
}

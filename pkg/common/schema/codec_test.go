package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type photoRecord struct {
	UserID  string `json:"userid"`
	AlbumID int64  `json:"albumid"`
	Caption string `json:"caption"`
}

func TestParse(t *testing.T) {
	record, err := Parse([]byte(`{"userid":"u1","albumid":3}`))
	require.NoError(t, err)
	assert.Equal(t, "u1", record["userid"])

	_, err = Parse(nil)
	assert.Error(t, err)

	_, err = Parse([]byte(`[1,2]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	var p photoRecord
	require.NoError(t, Record{"userid": "u1", "albumid": float64(7), "caption": "hi"}.Decode(&p))
	assert.Equal(t, photoRecord{UserID: "u1", AlbumID: 7, Caption: "hi"}, p)

	assert.Error(t, Record{"albumid": "seven"}.Decode(&p))
}

package pagination_test

import (
	"testing"
	"time"

	"github.com/savesphere/savings_tracker_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 11, 3, 9, 30, 15, 123456789, time.UTC)
	id := "8a3f0c1e-1111-2222-3333-444455556666"

	token := pagination.EncodeToken(createdAt, id)
	gotTime, gotID, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingID(t *testing.T) {
	token := pagination.EncodeToken(time.Now(), "")
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}

package ghostcut

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign_Deterministic(t *testing.T) {
	t.Parallel()

	body := []byte(`{"idProjects":[42]}`)
	first := Sign(body, "secret")
	second := Sign(body, "secret")
	require.Equal(t, first, second)
}

func TestSign_IsHexMD5(t *testing.T) {
	t.Parallel()

	sig := Sign([]byte("payload"), "secret")
	require.Len(t, sig, 32)
	_, err := hex.DecodeString(sig)
	require.NoError(t, err)
}

func TestSign_ChangesWithBodyAndSecret(t *testing.T) {
	t.Parallel()

	base := Sign([]byte("payload"), "secret")
	require.NotEqual(t, base, Sign([]byte("payload2"), "secret"))
	require.NotEqual(t, base, Sign([]byte("payload"), "other"))
}

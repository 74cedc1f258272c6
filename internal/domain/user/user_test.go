package user

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct {
	err error
}

func (h plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, h.err
}

func (h plainHasher) Verify(hash, password string) bool {
	return hash == "hashed:"+password
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("abebe", "abebe", "kebede", "Abebe@example.org", "s3cretpass", plainHasher{})
	require.NoError(t, err)
	assert.Equal(t, "abebe@example.org", u.Email())
	assert.Equal(t, "hashed:s3cretpass", u.PasswordHash())
	assert.True(t, u.CheckPassword("s3cretpass", plainHasher{}))
	assert.False(t, u.CheckPassword("wrong", plainHasher{}))

	_, err = NewUser("ab", "", "", "", "s3cretpass", plainHasher{})
	assert.Error(t, err)

	_, err = NewUser("abebe", "", "", "", "short", plainHasher{})
	assert.Error(t, err)

	_, err = NewUser("abebe", "", "", "", "s3cretpass", plainHasher{err: stderrors.New("boom")})
	assert.Error(t, err)
}

func TestPlannerName(t *testing.T) {
	withFirst, err := ReconstructUser(1, "abebe", "Abebe", "Kebede", "", "", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "Abebe", withFirst.PlannerName())
	assert.Equal(t, "Abebe Kebede", withFirst.DisplayName())

	withoutFirst, err := ReconstructUser(2, "tsion", "", "", "", "", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "tsion", withoutFirst.PlannerName())
	assert.Equal(t, "tsion", withoutFirst.DisplayName())
	assert.Equal(t, "", withoutFirst.Email())
}

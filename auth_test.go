package dashrpc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashrpc "github.com/erc7824/dashrpc"
)

func TestAuthCredentials(t *testing.T) {
	t.Parallel()

	cookiePath := filepath.Join(t.TempDir(), ".cookie")
	require.NoError(t, os.WriteFile(cookiePath, []byte("__cookie__:e6e8c5a0\n"), 0600))

	tcs := []struct {
		name     string
		auth     dashrpc.Auth
		wantUser string
		wantPass string
		wantErr  bool
	}{
		{
			name: "no credentials",
			auth: dashrpc.Auth{},
		},
		{
			name:     "user and password",
			auth:     dashrpc.Auth{Username: "alice", Password: "hunter2"},
			wantUser: "alice",
			wantPass: "hunter2",
		},
		{
			name:     "cookie file wins over inline credentials",
			auth:     dashrpc.Auth{Username: "alice", Password: "hunter2", CookiePath: cookiePath},
			wantUser: "__cookie__",
			wantPass: "e6e8c5a0",
		},
		{
			name:    "missing cookie file",
			auth:    dashrpc.Auth{CookiePath: filepath.Join(t.TempDir(), "nope")},
			wantErr: true,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, pass, err := tc.auth.Credentials()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUser, user)
			assert.Equal(t, tc.wantPass, pass)
		})
	}
}

func TestAuthCredentialsMalformedCookie(t *testing.T) {
	t.Parallel()

	cookiePath := filepath.Join(t.TempDir(), ".cookie")
	require.NoError(t, os.WriteFile(cookiePath, []byte("no separator here"), 0600))

	_, _, err := dashrpc.Auth{CookiePath: cookiePath}.Credentials()
	require.Error(t, err)
}

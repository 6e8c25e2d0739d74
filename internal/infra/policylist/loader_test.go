package policylist

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"credgate/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseTerms(t *testing.T) {
	terms, err := ParseTerms(strings.NewReader("damn\n  hell  \n\n\t\r\nbad word\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"damn", "hell", "bad word"}, terms)

	terms, err = ParseTerms(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestLoadStore(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "swear.txt", []byte("damn\nhell\n"), nil))
	require.NoError(t, bucket.WriteAll(ctx, "breached.txt", []byte("password123\nqwerty\n\n"), nil))

	store, err := LoadStore(ctx, bucket, "swear.txt", "breached.txt", newDiscardLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, store.ProfaneTermCount())
	assert.Equal(t, 2, store.BreachedPasswordCount())
	assert.True(t, store.ContainsProfaneTerm("hellohell"))
	assert.True(t, store.ContainsBreachedPassword("Mypassword123!"))
}

func TestLoadStore_EmptyKeyDisablesList(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "breached.txt", []byte("qwerty\n"), nil))

	store, err := LoadStore(ctx, bucket, "", "breached.txt", newDiscardLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, store.ProfaneTermCount())
	assert.Equal(t, 1, store.BreachedPasswordCount())
}

func TestLoadStore_MissingObject(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := LoadStore(context.Background(), bucket, "swear.txt", "", newDiscardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `policy list "swear.txt" not found`)
}

func TestNewPolicyStore_FileBucket(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "swearWords.txt"), []byte("damn\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "breachedpasswords.txt"), []byte("password123\n"), 0o600))
	t.Chdir(dir)

	cfg := &config.Config{
		Policy: &config.PolicyConfig{
			BucketURL:            "file://./",
			ProfaneTermsKey:      "swearWords.txt",
			BreachedPasswordsKey: "breachedpasswords.txt",
		},
	}

	store, err := NewPolicyStore(Params{Ctx: context.Background(), Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.True(t, store.ContainsProfaneTerm("damned"))
	assert.True(t, store.ContainsBreachedPassword("xpassword123x"))
}

func TestResolveBucketURL(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := resolveBucketURL("file://./data")
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(wd, "data")), got)

	got, err = resolveBucketURL("file:///etc/credgate")
	require.NoError(t, err)
	assert.Equal(t, "file:///etc/credgate", got)

	got, err = resolveBucketURL("mem://")
	require.NoError(t, err)
	assert.Equal(t, "mem://", got)
}

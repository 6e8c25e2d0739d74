// Package policylist loads the forbidden-term and breached-password lists
// from a gocloud.dev blob bucket and builds the policy store from them.
package policylist

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"credgate/config"
	"credgate/internal/domain/policy"
	"credgate/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for NewPolicyStore, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPolicyStore opens the configured bucket and loads both lists.
func NewPolicyStore(params Params) (*policy.Store, error) {
	cfg := params.Config.Policy
	if cfg == nil {
		return nil, errors.New("policy config is missing")
	}

	bucketURL, err := resolveBucketURL(cfg.BucketURL)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open policy bucket %s", bucketURL)
	}
	defer bucket.Close()

	return LoadStore(params.Ctx, bucket, cfg.ProfaneTermsKey, cfg.BreachedPasswordsKey, params.Logger)
}

// LoadStore reads both lists from bucket. An empty key yields an empty list.
func LoadStore(ctx context.Context, bucket *blob.Bucket, profaneKey, breachedKey string, logger *slog.Logger) (*policy.Store, error) {
	profaneTerms, err := loadList(ctx, bucket, profaneKey, logger)
	if err != nil {
		return nil, err
	}

	breachedPasswords, err := loadList(ctx, bucket, breachedKey, logger)
	if err != nil {
		return nil, err
	}

	store := policy.NewStore(profaneTerms, breachedPasswords)
	logger.Info("Policy lists loaded",
		slog.Int("profaneTerms", store.ProfaneTermCount()),
		slog.Int("breachedPasswords", store.BreachedPasswordCount()),
	)

	return store, nil
}

func loadList(ctx context.Context, bucket *blob.Bucket, key string, logger *slog.Logger) ([]string, error) {
	if key == "" {
		logger.Warn("Policy list key is empty, list disabled")

		return nil, nil
	}

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Errorf("policy list %q not found", key)
		}

		return nil, errors.Wrapf(err, "open policy list %q", key)
	}
	defer reader.Close()

	terms, err := ParseTerms(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "read policy list %q", key)
	}

	return terms, nil
}

// ParseTerms reads one term per line, trimming surrounding whitespace and
// skipping blank lines.
func ParseTerms(r io.Reader) ([]string, error) {
	var terms []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return terms, nil
}

// resolveBucketURL turns a relative file bucket ("file://./data") into an absolute one.
func resolveBucketURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrapf(err, "parse bucket url %q", raw)
	}
	if u.Scheme != "file" || (u.Host != "." && u.Host != "..") {
		return raw, nil
	}

	abs, err := filepath.Abs(u.Host + u.Path)
	if err != nil {
		return "", errors.Wrapf(err, "resolve bucket path %q", raw)
	}

	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: u.RawQuery}).String(), nil
}

package build_test

import (
	"testing"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/build"
	"github.com/fwojciec/refdex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackExtractor_UsesPrimaryWhenItFindsTopics(t *testing.T) {
	t.Parallel()

	e := &build.FallbackExtractor{
		Primary: &mock.TopicExtractor{
			ExtractFn: func(pkgDir, pkg string) ([]refdex.Topic, error) {
				return []refdex.Topic{{Alias: "foo", Title: "Foo", Package: pkg, File: "foo.html"}}, nil
			},
		},
		Fallback: &mock.TopicExtractor{
			ExtractFn: func(pkgDir, pkg string) ([]refdex.Topic, error) {
				t.Fatal("fallback should not be called")
				return nil, nil
			},
		},
	}

	topics, err := e.Extract("/scratch/alpha", "alpha")

	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "foo", topics[0].Alias)
}

func TestFallbackExtractor_FallsBackWhenPrimaryIsEmpty(t *testing.T) {
	t.Parallel()

	e := &build.FallbackExtractor{
		Primary: &mock.TopicExtractor{
			ExtractFn: func(pkgDir, pkg string) ([]refdex.Topic, error) { return nil, nil },
		},
		Fallback: &mock.TopicExtractor{
			ExtractFn: func(pkgDir, pkg string) ([]refdex.Topic, error) {
				return []refdex.Topic{{Alias: "bar", Title: "Bar", Package: pkg, File: "bar.html"}}, nil
			},
		},
	}

	topics, err := e.Extract("/scratch/alpha", "alpha")

	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "bar", topics[0].Alias)
}

func TestFallbackExtractor_PrimaryErrorIsNotScraped(t *testing.T) {
	t.Parallel()

	e := &build.FallbackExtractor{
		Primary: &mock.TopicExtractor{
			ExtractFn: func(pkgDir, pkg string) ([]refdex.Topic, error) {
				return nil, refdex.Errorf(refdex.EINVALID, "malformed topic metadata")
			},
		},
		Fallback: &mock.TopicExtractor{
			ExtractFn: func(pkgDir, pkg string) ([]refdex.Topic, error) {
				t.Fatal("fallback should not be called")
				return nil, nil
			},
		},
	}

	_, err := e.Extract("/scratch/alpha", "alpha")

	require.Error(t, err)
	assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
}

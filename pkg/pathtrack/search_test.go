package pathtrack

import (
	iofs "io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-code-lab/pathtrack/internal/testutil"
)

func TestFindByNameNotFound(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "src/main.go", "docs/")

	res, err := FindByName("index.html", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Code)
	assert.Nil(t, res.Paths)
	assert.Empty(t, res.Message)
	assert.False(t, res.Found())
}

func TestFindByNameSingleMatch(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "src/path.tracker.go", "src/shell.go", "README.md")

	res, err := FindByName("path.tracker.go", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Code)
	assert.Equal(t, []string{testutil.Abs(root, "src/path.tracker.go")}, res.Paths)
	assert.True(t, res.Unique())
}

func TestFindByNameMultipleMatches(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "dir/dir1/file1.txt", "dir/dir2/file1.txt", "dir/file2.txt")

	res, err := FindByName("file1.txt", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Code)
	assert.Equal(t, []string{
		testutil.Abs(root, "dir/dir1/file1.txt"),
		testutil.Abs(root, "dir/dir2/file1.txt"),
	}, res.Paths)
	assert.True(t, res.Ambiguous())
	assert.Empty(t, res.Message)
	for _, p := range res.Paths {
		assert.True(t, filepath.IsAbs(p))
		assert.Equal(t, "file1.txt", filepath.Base(p))
	}
}

func TestFindByNameFilesAndDirectoriesShareName(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root,
		"testFolder/testFile.txt",
		"testFolder/testFolder/testFile.txt/",
	)

	res, err := FindByName("testFile.txt", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{
		testutil.Abs(root, "testFolder/testFile.txt"),
		testutil.Abs(root, "testFolder/testFolder/testFile.txt"),
	}, res.Paths)
}

func TestFindByNameDescendantsPrecedeMatchingDirectory(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root,
		"testFolder/testFile.txt",
		"testFolder/testFolder/testFile.txt/",
	)

	res, err := FindByName("testFolder", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{
		testutil.Abs(root, "testFolder/testFolder"),
		testutil.Abs(root, "testFolder"),
	}, res.Paths)
}

func TestFindByNameIsExactAndCaseSensitive(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a/config.json.bak", "b/my-config.json", "c/Config.JSON")

	res, err := FindByName("config.json", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Code)
}

func TestFindByNameExclusion(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root,
		"node_modules/pkg/index.js",
		"src/index.js",
		"complexDir/subDir1/target.txt",
		"complexDir/subDir2/deep/er/target.txt",
		"other/subDir2/target.txt",
	)

	tests := []struct {
		name    string
		find    string
		exclude []string
		want    []string
	}{
		{
			name: "default skips node_modules",
			find: "index.js",
			want: []string{"src/index.js"},
		},
		{
			name:    "empty exclusion searches everything",
			find:    "index.js",
			exclude: []string{},
			want:    []string{"node_modules/pkg/index.js", "src/index.js"},
		},
		{
			name:    "bare name excluded at every depth",
			find:    "target.txt",
			exclude: []string{"subDir2"},
			want:    []string{"complexDir/subDir1/target.txt"},
		},
		{
			name:    "multi-segment exclusion matches nothing",
			find:    "target.txt",
			exclude: []string{"complexDir/subDir2"},
			want: []string{
				"complexDir/subDir1/target.txt",
				"complexDir/subDir2/deep/er/target.txt",
				"other/subDir2/target.txt",
			},
		},
		{
			name:    "match only inside excluded subtree",
			find:    "er",
			exclude: []string{"complexDir"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FindByName(tt.find, Options{Root: root, Exclude: tt.exclude})
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Equal(t, StatusNotFound, res.Code)
				assert.Nil(t, res.Paths)
				return
			}
			want := make([]string, 0, len(tt.want))
			for _, rel := range tt.want {
				want = append(want, testutil.Abs(root, rel))
			}
			assert.Equal(t, StatusFound, res.Code)
			assert.Equal(t, want, res.Paths)
		})
	}
}

func TestFindByNameExcludedDirectoryIsNotItselfMatched(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "vendor/", "lib/vendor/")

	res, err := FindByName("vendor", Options{Root: root, Exclude: []string{"vendor"}})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Code)
}

func TestFindByNameSkipsHiddenEntriesByDefault(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, ".git/config", "app/config", ".env")

	res, err := FindByName("config", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.Abs(root, "app/config")}, res.Paths)

	env, err := FindByName(".env", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, env.Code)
	assert.Nil(t, env.Paths)

	all, err := FindByName("config", Options{Root: root, IncludeHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{
		testutil.Abs(root, ".git/config"),
		testutil.Abs(root, "app/config"),
	}, all.Paths)

	env, err = FindByName(".env", Options{Root: root, IncludeHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.Abs(root, ".env")}, env.Paths)
}

func TestFindByNameRestrictedRoot(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a/target.txt", "b/other.txt")

	res, err := FindByName("target.txt", Options{Root: testutil.Abs(root, "b")})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Code)
}

func TestFindByNameDefaultsToWorkingDirectory(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "src/app.go")
	t.Chdir(root)

	res, err := FindByName("app.go", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.Abs(root, "src/app.go")}, res.Paths)

	wd, err := RootPath()
	require.NoError(t, err)
	assert.Equal(t, root, wd)
}

func TestFindByNameResolvesRelativeRoot(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "nested/inner/app.go")
	t.Chdir(root)

	res, err := FindByName("app.go", Options{Root: "nested"})
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.Abs(root, "nested/inner/app.go")}, res.Paths)
}

func TestFindByNameSeedIsPreservedAndCopied(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "x/hit.txt")

	seed := make([]string, 1, 4)
	seed[0] = "/previous/hit.txt"

	res, err := FindByName("hit.txt", Options{Root: root, Seed: seed})
	require.NoError(t, err)
	assert.Equal(t, []string{"/previous/hit.txt", testutil.Abs(root, "x/hit.txt")}, res.Paths)
	assert.Equal(t, []string{"/previous/hit.txt"}, seed)
	assert.Equal(t, "", seed[:2][1], "seed backing array must stay untouched")

	miss, err := FindByName("absent.txt", Options{Root: root, Seed: seed})
	require.NoError(t, err)
	assert.Equal(t, StatusFound, miss.Code, "seeded entries count toward the status")
}

func TestFindByNameInvalidQuery(t *testing.T) {
	for _, name := range []string{"", ".", "..", "dir/file.txt"} {
		res, err := FindByName(name, Options{Root: t.TempDir()})
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, ErrInvalidQuery), "name %q: %v", name, err)
	}
}

func TestFindByNameMissingRootFails(t *testing.T) {
	missing := filepath.Join(testutil.TempRoot(t), "does-not-exist")

	res, err := FindByName("anything", Options{Root: missing})
	assert.Nil(t, res)
	require.Error(t, err)

	var listErr *ListError
	require.True(t, errors.As(err, &listErr))
	assert.Equal(t, missing, listErr.Path)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestFindBySegmentNarrowsToContainingPath(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "dir/dir1/file1.txt", "dir/dir2/file1.txt")

	byName, err := FindByName("file1.txt", Options{Root: root})
	require.NoError(t, err)
	assert.Len(t, byName.Paths, 2)

	res, err := FindBySegment("/dir1/file1.txt", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Code)
	assert.Equal(t, []string{testutil.Abs(root, "dir/dir1/file1.txt")}, res.Paths)
	assert.Empty(t, res.Message)
}

func TestFindBySegmentSingleComponent(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "config/settings.json")

	res, err := FindBySegment("/settings.json", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Code)
	assert.Equal(t, []string{testutil.Abs(root, "config/settings.json")}, res.Paths)
	assert.Empty(t, res.Message)
}

func TestFindBySegmentAmbiguous(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root,
		"dist/index.js",
		"playground/src/component-1/index.js",
		"playground/src/component-2/index.js",
	)

	res, err := FindBySegment("/index.js", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Code)
	assert.Len(t, res.Paths, 3)
	assert.NotEmpty(t, res.Message)
	assert.Contains(t, res.Message, `"index.js"`)

	res, err = FindBySegment("src/component-1/index.js", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.Abs(root, "playground/src/component-1/index.js")}, res.Paths)
	assert.Empty(t, res.Message)

	res, err = FindBySegment("src/index.js", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Code)
}

func TestFindBySegmentAmbiguityMessageNamesFirstComponent(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a/lib/util/strings.go", "b/lib/util/strings.go")

	res, err := FindBySegment("lib/util/strings.go", Options{Root: root})
	require.NoError(t, err)
	assert.Len(t, res.Paths, 2)
	assert.Contains(t, res.Message, `"lib"`)
}

func TestFindBySegmentDowngradesWhenContainmentFails(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "left/file1.txt", "right/file1.txt")

	res, err := FindBySegment("middle/file1.txt", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Code)
	assert.Nil(t, res.Paths)
	assert.Empty(t, res.Message)
}

func TestFindBySegmentNoBareMatch(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a/b.txt")

	res, err := FindBySegment("a/missing.txt", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Code)
	assert.Nil(t, res.Paths)
}

func TestFindBySegmentIsSubsetOfFindByName(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root,
		"x/y/z.txt",
		"x/q/z.txt",
		"w/y/z.txt",
		"node_modules/y/z.txt",
	)

	byName, err := FindByName("z.txt", Options{Root: root})
	require.NoError(t, err)

	for _, segment := range []string{"z.txt", "/z.txt", "y/z.txt", "x/y/z.txt", "q/z.txt", "nope/z.txt"} {
		res, err := FindBySegment(segment, Options{Root: root})
		require.NoError(t, err)
		for _, p := range res.Paths {
			assert.Contains(t, byName.Paths, p, "segment %q", segment)
			assert.True(t, strings.Contains(p, filepath.FromSlash(segment)))
		}
		assert.Equal(t, res.Code == StatusFound, len(res.Paths) > 0)
	}
}

func TestFindBySegmentTrailingSeparator(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "pkg/assets/", "web/assets/", "pkg/assets.go")

	res, err := FindBySegment("pkg/assets/", Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.Abs(root, "pkg/assets")}, res.Paths)
}

func TestFindBySegmentInvalid(t *testing.T) {
	for _, segment := range []string{"", ".", "..", "/", "a/.."} {
		res, err := FindBySegment(segment, Options{Root: t.TempDir()})
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, ErrInvalidQuery), "segment %q: %v", segment, err)
	}
}

func TestParseSegment(t *testing.T) {
	q, err := parseSegment("/dir1/file1.txt")
	require.NoError(t, err)
	assert.Equal(t, "file1.txt", q.target)
	assert.Equal(t, filepath.FromSlash("/dir1/file1.txt"), q.needle)
	assert.Equal(t, "dir1", q.first)

	q, err = parseSegment("./docs//guide.md")
	require.NoError(t, err)
	assert.Equal(t, "guide.md", q.target)
	assert.Equal(t, "docs", q.first)
}

func TestSearcherReusesResolvedOptions(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a/one.txt", "b/two.txt")

	s, err := New(Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, DefaultExclude, s.Options().Exclude)

	one, err := s.FindByName("one.txt")
	require.NoError(t, err)
	two, err := s.FindBySegment("b/two.txt")
	require.NoError(t, err)
	assert.True(t, one.Unique())
	assert.True(t, two.Unique())
}

func TestDefaultOptions(t *testing.T) {
	root := testutil.TempRoot(t)
	t.Chdir(root)

	opts, err := DefaultOptions()
	require.NoError(t, err)
	assert.Equal(t, root, opts.Root)
	assert.Equal(t, []string{"node_modules"}, opts.Exclude)
	assert.NotNil(t, opts.Lister)
	assert.NotNil(t, opts.Logger)
}

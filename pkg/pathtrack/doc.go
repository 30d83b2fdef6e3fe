// Package pathtrack finds files and directories by name below a root
// directory.
//
// Two queries are supported. FindByName matches a bare name against the
// final component of every path under the root. FindBySegment takes a short
// relative path such as "dir1/file1.txt", searches for its last component and
// keeps only the absolute paths that contain the whole segment:
//
//	res, err := pathtrack.FindBySegment("config/settings.json", pathtrack.Options{})
//	if err != nil {
//		return err // the tree could not be read
//	}
//	if !res.Found() {
//		return nil // searched, nothing there
//	}
//	if res.Ambiguous() {
//		fmt.Println(res.Message)
//	}
//
// The walk is depth-first in listing order. A directory's descendants are
// visited before the directory itself is tested, so matches below a matching
// directory precede it in Result.Paths. Names listed in Options.Exclude are
// skipped with their whole subtree wherever they appear.
//
// A directory that cannot be listed aborts the search with a *ListError.
// "Nothing found" is never an error; it is a Result with Code StatusNotFound.
package pathtrack

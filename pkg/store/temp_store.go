package store

import (
	"fmt"
	"path/filepath"

	"github.com/emekler0729/egg/pkg/testutil"
)

// MustTempStore returns a Store backed by a file in a temporary directory,
// both of which are removed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st, err := NewStore(filepath.Join(dir, "db.bolt"))
	if err != nil {
		panic(fmt.Sprintf("failed to create temporary store: %v", err))
	}
	c.Cleanup(func() { st.Close() })
	return st
}

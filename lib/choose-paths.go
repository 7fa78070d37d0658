package backgroundlib

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Chooser picks wallpaper paths uniformly at random.
// It is not safe for concurrent use.
type Chooser struct {
	rng *rand.Rand
}

// A nil src seeds from the clock.
func NewChooser(src rand.Source) *Chooser {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Chooser{rng: rand.New(src)}
}

// Lists the immediate children of dir in the order the filesystem returns
// them. Hidden entries are skipped, the same as a shell "*" glob.
func listCandidates(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(names))
	for _, n := range names {
		if strings.HasPrefix(n, ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, n))
	}
	return paths, nil
}

// ChooseOne returns a random entry directly inside basePath/subPath that is
// not in excludes.
func (c *Chooser) ChooseOne(
	basePath, subPath string, excludes map[string]bool) (string, error) {
	dir := filepath.Join(basePath, subPath)

	all, err := listCandidates(dir)
	if err != nil {
		return "", &EmptyCandidatePoolError{Dir: dir, Err: err}
	}

	pool := make([]string, 0, len(all))
	for _, p := range all {
		if !excludes[p] {
			pool = append(pool, p)
		}
	}

	if len(pool) == 0 {
		return "", &EmptyCandidatePoolError{Dir: dir, Excluded: len(all)}
	}

	return pool[c.rng.Intn(len(pool))], nil
}

// ChooseMany returns count distinct entries of basePath in the order they
// were chosen.
func (c *Chooser) ChooseMany(basePath string, count int) ([]string, error) {
	return c.ChoosePreferring(basePath, "", count)
}

// ChoosePreferring draws from basePath/subPath until it runs dry, then fills
// the rest of the selection from basePath. The subPath directory itself is
// never chosen.
func (c *Chooser) ChoosePreferring(
	basePath, subPath string, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("Invalid wallpaper count %d", count)
	}

	paths := make([]string, 0, count)
	excludes := make(map[string]bool, count+1)

	preferred := subPath != "" && isDir(filepath.Join(basePath, subPath))
	if preferred {
		excludes[filepath.Join(basePath, subPath)] = true
	}

	for len(paths) < count {
		var p string
		var err error

		if preferred {
			p, err = c.ChooseOne(basePath, subPath, excludes)
			if errors.Is(err, ErrEmptyCandidatePool) {
				preferred = false
				continue
			}
		} else {
			p, err = c.ChooseOne(basePath, "", excludes)
		}
		if err != nil {
			return nil, err
		}

		excludes[p] = true
		paths = append(paths, p)
	}

	return paths, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File for in-memory entries
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

// memoryDirectory implements Directory for the in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk visits entries in lexical path order so tests are deterministic.
// Relative paths are recomputed against the opened directory, matching the
// OS implementation. Callback panics are converted to errors.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	var entries []*memoryFile
	for entryPath, entry := range d.fs.entries {
		if entryPath == d.absPath || strings.HasPrefix(entryPath, strings.TrimSuffix(d.absPath, "/")+"/") {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	for _, entry := range entries {
		view := &memoryFile{
			absPath: entry.absPath,
			relPath: relativeTo(d.absPath, entry.absPath),
			content: entry.content,
			info:    entry.info,
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(view, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// relativeTo strips base from target. Both are cleaned virtual paths.
func relativeTo(base, target string) string {
	if target == base {
		return "."
	}
	return strings.TrimPrefix(target, strings.TrimSuffix(base, "/")+"/")
}

// MemoryFileSystem implements FileSystemProvider for tests. Paths use
// forward slashes regardless of host platform.
type MemoryFileSystem struct {
	entries map[string]*memoryFile // absolute virtual path -> entry
	root    string
}

// NewMemoryFileSystem creates an in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryFile),
		root:    root,
	}
	mfs.addDir(root)

	return mfs
}

// AddFile adds a file to the in-memory filesystem, creating parent
// directory entries as needed. Relative paths are resolved against the root.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)

	mfs.entries[absPath] = &memoryFile{
		absPath: absPath,
		content: []byte(content),
		info: &memoryFileInfo{
			name: path.Base(absPath),
			size: int64(len(content)),
			mode: 0644,
		},
	}

	for dir := path.Dir(absPath); dir != "." && dir != "/" && dir != mfs.root; dir = path.Dir(dir) {
		if _, exists := mfs.entries[dir]; exists {
			break
		}
		mfs.addDir(dir)
	}
}

func (mfs *MemoryFileSystem) addDir(absPath string) {
	mfs.entries[absPath] = &memoryFile{
		absPath: absPath,
		info: &memoryFileInfo{
			name:  path.Base(absPath),
			mode:  0755 | fs.ModeDir,
			isDir: true,
		},
	}
}

// resolve converts a caller-supplied path into an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if !strings.HasPrefix(p, "/") {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	if entry, exists := mfs.entries[absPath]; exists {
		if !entry.info.IsDir() {
			return nil, fmt.Errorf("path is not a directory: %s", openPath)
		}
		return &memoryDirectory{absPath: absPath, fs: mfs}, nil
	}

	// Directories may exist only implicitly through files beneath them.
	for entryPath := range mfs.entries {
		if strings.HasPrefix(entryPath, absPath+"/") {
			return &memoryDirectory{absPath: absPath, fs: mfs}, nil
		}
	}

	return nil, fmt.Errorf("directory not found: %s", openPath)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return entry.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}

	return entry.info, nil
}

package storage

import (
	"os"
	"strings"
	"sync"
	"tripbook/config"
)

type DiskStorage struct {
	Storage
	// BasePath is a directory (usually mount point of a disk) that is writable by the current process
	BasePath  string
	dirs      map[string]bool
	dirsMutex sync.Mutex
}

func NewDiskStorage(bucket *Bucket) StorageAPI {
	result := &DiskStorage{
		BasePath: bucket.Path,
		Storage: Storage{
			Bucket: *bucket,
		},
		dirs: make(map[string]bool, 10),
	}
	result.specifics = result
	return result
}

func (s *DiskStorage) GetFullPath(path string) string {
	return s.BasePath + "/" + path
}

func (s *DiskStorage) EnsureDirExists(dir string) error {
	s.dirsMutex.Lock()
	defer s.dirsMutex.Unlock()

	if ok := s.dirs[dir]; ok {
		return nil
	}
	s.dirs[dir] = true
	return os.MkdirAll(dir, 0777)
}

// EnsureLocalFile is a no-op as disk files are already local
func (s *DiskStorage) EnsureLocalFile(path string) error {
	return nil
}

func (s *DiskStorage) ReleaseLocalFile(path string) {}

// UpdateRemoteFile is a no-op as Save already wrote the final file
func (s *DiskStorage) UpdateRemoteFile(path, mimeType string) error {
	return nil
}

func (s *DiskStorage) DeleteRemoteFile(path string) error {
	return nil
}

// GetPublicURL maps a stored path to the /file/ serving route
func (s *DiskStorage) GetPublicURL(path string) string {
	base := s.Bucket.PublicBaseURL
	if base == "" {
		base = config.PUBLIC_BASE_URL
	}
	return strings.TrimSuffix(base, "/") + "/file/" + strings.TrimPrefix(path, "/")
}

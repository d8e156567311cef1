package file

import (
	"os"
)

type FileRepository struct{}

func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

func (r *FileRepository) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists is false for any stat failure, not only a missing path.
func (r *FileRepository) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (r *FileRepository) Mkdir(path string) error {
	return os.Mkdir(path, os.ModePerm)
}

func (r *FileRepository) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

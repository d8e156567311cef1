//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

type Repository interface {
	Read(path string) ([]byte, error)
	Exists(path string) bool
	// Mkdir creates a single directory; the parent must already exist.
	Mkdir(path string) error
	RemoveAll(path string) error
}

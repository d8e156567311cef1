//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package ksuid

// IKsuid issues the run id printed with debug output
type IKsuid interface {
	New() string
}

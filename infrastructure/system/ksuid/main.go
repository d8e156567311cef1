package ksuid

import (
	"github.com/segmentio/ksuid"
	domainKsuid "github.com/t-kuni/cpb/domain/system/ksuid"
)

type RunIdGenerator struct{}

func NewRunIdGenerator() domainKsuid.IKsuid {
	return &RunIdGenerator{}
}

// New returns a time-ordered id so runs sort chronologically in collected debug logs.
func (g *RunIdGenerator) New() string {
	return ksuid.New().String()
}

// Package importer turns historical warehouse records into ledger
// batches. The only supported source today is the semicolon-separated
// CSV the old spreadsheet workflow exported.
package importer

import (
	"fmt"
	"io"

	"github.com/rizkyhp/gudangpro/internal/ledger"
)

type Source string

const SourceLegacy Source = "legacy"

type Parser interface {
	Parse(r io.Reader) ([]ledger.CreateParams, error)
}

type Service struct {
	legacy Parser
}

func NewService() *Service {
	return &Service{legacy: NewLegacyParser()}
}

func (s *Service) Import(source Source, r io.Reader) ([]ledger.CreateParams, error) {
	switch source {
	case SourceLegacy:
		return s.legacy.Parse(r)
	}

	return nil, fmt.Errorf("unknown import source: %s", source)
}

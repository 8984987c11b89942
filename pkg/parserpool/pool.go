// Package parserpool provides a pool of gnparser instances for
// concurrent name parsing. This is a pure package - parsing is
// computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides a pool of gnparser instances for concurrent parsing.
// All names in the vegetation database follow the botanical code.
type Pool interface {
	// Parse parses a scientific name string. It retrieves a parser
	// from the pool, parses the name, and returns the parser to the
	// pool. This method is safe for concurrent use.
	Parse(nameString string) parsed.Parsed

	// Canonical returns the simple canonical form of a name, or the
	// empty string when the name does not parse.
	Canonical(nameString string) string

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// PoolImpl implements the Pool interface using gnparser.NewPool.
type PoolImpl struct {
	parserCh chan gnparser.GNparser
	poolSize int
}

// NewPool creates a new parser pool with the specified number of
// workers. If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
	)
	parserCh := gnparser.NewPool(cfg, poolSize)

	return &PoolImpl{
		parserCh: parserCh,
		poolSize: poolSize,
	}
}

// Parse parses a scientific name string. It retrieves a parser from
// the pool (blocking if all parsers are busy), parses the name, and
// returns the parser to the pool.
func (p *PoolImpl) Parse(nameString string) parsed.Parsed {
	parser := <-p.parserCh
	result := parser.ParseName(nameString)
	p.parserCh <- parser

	return result
}

// Canonical returns the simple canonical form of a parsed name.
func (p *PoolImpl) Canonical(nameString string) string {
	result := p.Parse(nameString)
	if !result.Parsed || result.Canonical == nil {
		return ""
	}
	return result.Canonical.Simple
}

// Close shuts down the parser pool and releases resources.
func (p *PoolImpl) Close() {
	if p.parserCh != nil {
		close(p.parserCh)
		for range p.parserCh {
		}
	}
}

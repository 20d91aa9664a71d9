package networks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tranvictor/walletclient/logger"
)

// Insert more Chain implementations here to support more chains
var supportedChains = []Chain{
	EthereumMainnet,
	Sepolia,
	Holesky,
	BSCMainnet,
	BSCTestnet,
	Polygon,
	ArbitrumMainnet,
	OptimismMainnet,
	BaseMainnet,
	Anvil,
}

var (
	ErrChainNotFound = errors.New("chain not found")
	ErrDuplicateName = errors.New("chain name already registered")
)

// Registry indexes chains by name, alternative name and chain id.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Chain
	byID   map[uint64]Chain
}

// NewRegistry indexes chains, a name or alternative name used twice is
// an error.
func NewRegistry(chains ...Chain) (*Registry, error) {
	r := &Registry{
		byName: map[string]Chain{},
		byID:   map[uint64]Chain{},
	}
	for _, c := range chains {
		for _, name := range append([]string{c.Name()}, c.AlternativeNames()...) {
			if _, found := r.byName[name]; found {
				return nil, fmt.Errorf("'%s': %w", name, ErrDuplicateName)
			}
			r.byName[name] = c
		}
		r.byID[c.ID()] = c
	}
	return r, nil
}

// Add registers c, replacing any chain with the same name or id.
func (r *Registry) Add(c Chain) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, found := r.byName[c.Name()]; found {
		logger.Warn("Chain with name '%s' already exists. Using custom chain.", c.Name())
		r.removeLocked(old)
	}
	if old, found := r.byID[c.ID()]; found {
		logger.Warn("Chain with id '%d' already exists. Using custom chain.", c.ID())
		r.removeLocked(old)
	}
	r.byName[c.Name()] = c
	for _, an := range c.AlternativeNames() {
		r.byName[an] = c
	}
	r.byID[c.ID()] = c
}

func (r *Registry) removeLocked(c Chain) {
	for name, existing := range r.byName {
		if existing == c {
			delete(r.byName, name)
		}
	}
	if existing, found := r.byID[c.ID()]; found && existing == c {
		delete(r.byID, c.ID())
	}
}

func (r *Registry) Get(name string) (Chain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, found := r.byName[name]
	if !found {
		return nil, fmt.Errorf("chain name '%s': %w", name, ErrChainNotFound)
	}
	return c, nil
}

func (r *Registry) GetByID(id uint64) (Chain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, found := r.byID[id]
	if !found {
		return nil, fmt.Errorf("chain id %d: %w", id, ErrChainNotFound)
	}
	return c, nil
}

// Chains returns every registered chain sorted by chain id.
func (r *Registry) Chains() []Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Chain, 0, len(r.byID))
	for _, c := range r.byID {
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID() < res[j].ID() })
	return res
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.byName))
	for name := range r.byName {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// LoadDir adds every *.json chain config found in dir. A missing dir is
// not an error, a file that doesn't parse is skipped with a warning.
func (r *Registry) LoadDir(dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}
	loaded := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return loaded, fmt.Errorf("failed to read file %s: %w", file, err)
		}
		c, err := NewChainFromJSON(content)
		if err != nil {
			logger.Warn("failed to parse chain from file %s: %s. Ignore and continue with other custom chains.", file, err)
			continue
		}
		r.Add(c)
		loaded++
	}
	return loaded, nil
}

// Save adds c to the registry and stores it as <dir>/<name>.json
func (r *Registry) Save(dir string, c *GenericChain) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	content, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal chain: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.json", c.Name()))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write the new chain to file: %w", err)
	}
	r.Add(c)
	return nil
}

var globalRegistry = mustRegistry(supportedChains...)

func mustRegistry(chains ...Chain) *Registry {
	r, err := NewRegistry(chains...)
	if err != nil {
		panic(err)
	}
	return r
}

func Default() *Registry {
	return globalRegistry
}

func GetChain(name string) (Chain, error) {
	return globalRegistry.Get(name)
}

func GetChainByID(id uint64) (Chain, error) {
	return globalRegistry.GetByID(id)
}

func SupportedChains() []Chain {
	return globalRegistry.Chains()
}

func SupportedChainNames() []string {
	return globalRegistry.Names()
}

func LoadCustomChains(dir string) (int, error) {
	return globalRegistry.LoadDir(dir)
}
